package profileRepo

import (
	"context"

	"nowme/models"
)

// ProfileRepository reads buyer profiles. Account management owns the
// collection; the pipeline only ever needs name and contact email.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.UserProfile, error)
}
