package state

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/garnizeh/skillswap/internal/mirror"
	"github.com/garnizeh/skillswap/internal/models"
	"github.com/garnizeh/skillswap/pkg/remote"
)

// Mirror op kinds. They match the remote store's action names so queue
// logs read the same as server logs.
const (
	OpSaveSession         = "save_session"
	OpUpdateSessionStatus = "update_session_status"
	OpSaveReview          = "save_review"
	OpUpdateProfile       = "update_profile"
	OpAddSkill            = "add_skill"
	OpSendMessage         = "send_message"
)

// statusChange carries the two fields update_session_status needs.
type statusChange struct {
	SessionID string
	Status    models.SessionStatus
}

// MirrorHandlers binds every mirror op kind to the corresponding remote
// call. Payload type mismatches are reported as handler errors, which the
// queue logs and drops.
func MirrorHandlers(client *remote.Client) map[string]mirror.Handler {
	return map[string]mirror.Handler{
		OpSaveSession: func(ctx context.Context, op mirror.Op) error {
			session, ok := op.Payload.(models.Session)
			if !ok {
				return fmt.Errorf("save_session: unexpected payload %T", op.Payload)
			}
			return client.SaveSession(ctx, session)
		},
		OpUpdateSessionStatus: func(ctx context.Context, op mirror.Op) error {
			change, ok := op.Payload.(statusChange)
			if !ok {
				return fmt.Errorf("update_session_status: unexpected payload %T", op.Payload)
			}
			return client.UpdateSessionStatus(ctx, change.SessionID, change.Status)
		},
		OpSaveReview: func(ctx context.Context, op mirror.Op) error {
			review, ok := op.Payload.(models.Review)
			if !ok {
				return fmt.Errorf("save_review: unexpected payload %T", op.Payload)
			}
			return client.SaveReview(ctx, review)
		},
		OpUpdateProfile: func(ctx context.Context, op mirror.Op) error {
			user, ok := op.Payload.(models.User)
			if !ok {
				return fmt.Errorf("update_profile: unexpected payload %T", op.Payload)
			}
			return client.UpdateProfile(ctx, user)
		},
		OpAddSkill: func(ctx context.Context, op mirror.Op) error {
			skill, ok := op.Payload.(models.Skill)
			if !ok {
				return fmt.Errorf("add_skill: unexpected payload %T", op.Payload)
			}
			return client.AddSkill(ctx, skill)
		},
		OpSendMessage: func(ctx context.Context, op mirror.Op) error {
			msg, ok := op.Payload.(models.Message)
			if !ok {
				return fmt.Errorf("send_message: unexpected payload %T", op.Payload)
			}
			return client.SendMessage(ctx, msg)
		},
	}
}

func newID() string {
	return uuid.NewString()
}
