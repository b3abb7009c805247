// Package service contains the application's business logic, sitting between
// HTTP handlers and repositories.
package service

import (
	"context"
	"encoding/json"

	"gotolinks/internal/editor"
	"gotolinks/internal/featureflags"
	"gotolinks/internal/middleware"
	"gotolinks/internal/models"
	"gotolinks/internal/preview"
	"gotolinks/internal/render"
	"gotolinks/internal/repository"
	"gotolinks/internal/validation"
)

// maxFreeBlocks caps the block count for free-plan creators.
const maxFreeBlocks = 8

// unlimitedBlocksFlag lifts the free-plan block cap for flagged users.
const unlimitedBlocksFlag = "unlimited-blocks"

// EditorService owns live editing sessions. Edits mutate an in-memory working
// copy; persistence happens through debounced autosave or an explicit save.
type EditorService struct {
	sessions    *editor.Sessions
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	flags       *featureflags.Manager
	notifier    *preview.Notifier
}

// NewEditorService wires an editor service over the given repositories.
func NewEditorService(
	sessions *editor.Sessions,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	flags *featureflags.Manager,
	notifier *preview.Notifier,
) *EditorService {
	return &EditorService{
		sessions:    sessions,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		flags:       flags,
		notifier:    notifier,
	}
}

// session returns the live editing session for the user's profile, creating
// one from the persisted profile when none is open yet.
func (s *EditorService) session(ctx context.Context, userID string) (*editor.Session, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	handle := user.Handle
	return s.sessions.GetOrCreate(profile.ID, func() (*models.Profile, editor.FlushFunc, error) {
		return profile, s.flushFunc(handle), nil
	})
}

// flushFunc builds the persistence callback for a session. Each flush saves
// the working copy and pushes a fresh rendered snapshot to live previews.
func (s *EditorService) flushFunc(handle string) editor.FlushFunc {
	return func(p *models.Profile) error {
		ctx := context.Background()
		if err := s.profileRepo.Save(ctx, p); err != nil {
			middleware.AutosaveFlushes.WithLabelValues("error").Inc()
			return err
		}
		middleware.AutosaveFlushes.WithLabelValues("ok").Inc()
		s.publishPreview(ctx, handle, p)
		return nil
	}
}

func (s *EditorService) publishPreview(ctx context.Context, handle string, p *models.Profile) {
	if s.notifier == nil {
		return
	}
	view := render.Profile(handle, p)
	payload, err := json.Marshal(view)
	if err != nil {
		return
	}
	_ = s.notifier.PublishProfileUpdate(ctx, handle, payload)
}

// Snapshot returns the user's current working copy, opening a session when
// needed so reads and edits observe the same state.
func (s *EditorService) Snapshot(ctx context.Context, userID string) (*models.Profile, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

// AddBlock appends a new block of the given type to the user's profile.
func (s *EditorService) AddBlock(ctx context.Context, userID string, t models.BlockType, data models.BlockData) (*models.ProfileBlock, error) {
	if err := validation.ValidateBlockType(t); err != nil {
		middleware.BlockOps.WithLabelValues("add", "rejected").Inc()
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateBlockData(t, data); err != nil {
		middleware.BlockOps.WithLabelValues("add", "rejected").Inc()
		return nil, models.NewValidationError(err.Error())
	}

	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.checkBlockQuota(ctx, userID, len(sess.Snapshot().Blocks)); err != nil {
		middleware.BlockOps.WithLabelValues("add", "rejected").Inc()
		return nil, err
	}

	block, err := sess.AddBlock(t, data)
	if err != nil {
		middleware.BlockOps.WithLabelValues("add", "error").Inc()
		return nil, err
	}
	middleware.BlockOps.WithLabelValues("add", "ok").Inc()
	return block, nil
}

// checkBlockQuota enforces the free-plan block cap. Pro creators and users in
// the unlimited-blocks rollout are exempt.
func (s *EditorService) checkBlockQuota(ctx context.Context, userID string, current int) error {
	if current < maxFreeBlocks {
		return nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Plan == models.PlanPro {
		return nil
	}
	if s.flags != nil && s.flags.Enabled(unlimitedBlocksFlag, userID) {
		return nil
	}
	return models.NewValidationError("Free plan is limited to 8 blocks; upgrade to add more")
}

// UpdateBlock merges a partial data patch into one block.
func (s *EditorService) UpdateBlock(ctx context.Context, userID, blockID string, patch models.BlockDataPatch) (*models.Profile, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := sess.UpdateBlockData(blockID, patch); err != nil {
		outcome := "error"
		if models.IsBlockNotFound(err) {
			outcome = "not_found"
		}
		middleware.BlockOps.WithLabelValues("update", outcome).Inc()
		return nil, err
	}
	middleware.BlockOps.WithLabelValues("update", "ok").Inc()
	return sess.Snapshot(), nil
}

// DeleteBlock removes a block and closes the position gap it leaves.
func (s *EditorService) DeleteBlock(ctx context.Context, userID, blockID string) (*models.Profile, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := sess.DeleteBlock(blockID); err != nil {
		outcome := "error"
		if models.IsBlockNotFound(err) {
			outcome = "not_found"
		}
		middleware.BlockOps.WithLabelValues("delete", outcome).Inc()
		return nil, err
	}
	middleware.BlockOps.WithLabelValues("delete", "ok").Inc()
	return sess.Snapshot(), nil
}

// MoveBlock swaps a block with its neighbor in the given direction. Moves at
// the list boundary succeed without changing anything.
func (s *EditorService) MoveBlock(ctx context.Context, userID, blockID string, dir editor.MoveDirection) (*models.Profile, error) {
	if !dir.Valid() {
		middleware.BlockOps.WithLabelValues("move", "rejected").Inc()
		return nil, models.NewValidationError("direction must be \"up\" or \"down\"")
	}

	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := sess.MoveBlock(blockID, dir); err != nil {
		outcome := "error"
		if models.IsBlockNotFound(err) {
			outcome = "not_found"
		}
		middleware.BlockOps.WithLabelValues("move", outcome).Inc()
		return nil, err
	}
	middleware.BlockOps.WithLabelValues("move", "ok").Inc()
	return sess.Snapshot(), nil
}

// UpdateDetailsInput carries a full replacement of the profile's header
// fields. Blocks are untouched.
type UpdateDetailsInput struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photo_url"`
	Location string `json:"location"`
	Theme    string `json:"theme"`
}

const (
	maxNameLen     = 120
	maxHeadlineLen = 200
	maxBioLen      = 2000
	maxLocationLen = 120
)

// UpdateDetails replaces the profile's header fields and theme. The change
// goes through the editing session so it lands in the same autosave cycle as
// pending block edits.
func (s *EditorService) UpdateDetails(ctx context.Context, userID string, in UpdateDetailsInput) (*models.Profile, error) {
	if len(in.Name) > maxNameLen {
		return nil, models.NewValidationError("Name too long (max 120 characters)")
	}
	if len(in.Headline) > maxHeadlineLen {
		return nil, models.NewValidationError("Headline too long (max 200 characters)")
	}
	if len(in.Bio) > maxBioLen {
		return nil, models.NewValidationError("Bio too long (max 2000 characters)")
	}
	if len(in.Location) > maxLocationLen {
		return nil, models.NewValidationError("Location too long (max 120 characters)")
	}
	if in.Theme != "" && !models.ValidTheme(in.Theme) {
		return nil, models.NewValidationError("Unknown theme " + in.Theme)
	}

	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	sess.UpdateDetails(func(p *models.Profile) {
		p.Name = in.Name
		p.Headline = in.Headline
		p.Bio = in.Bio
		p.PhotoURL = in.PhotoURL
		p.Location = in.Location
		if in.Theme != "" {
			p.Theme = in.Theme
		}
	})
	return sess.Snapshot(), nil
}

// Save flushes the user's pending edits immediately, bypassing the autosave
// idle window. A failed write is reported; the working copy is kept so the
// edits are not lost.
func (s *EditorService) Save(ctx context.Context, userID string) (*models.Profile, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := sess.Flush(); err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

// CloseSession flushes and discards the user's editing session, if any.
func (s *EditorService) CloseSession(ctx context.Context, userID string) error {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	s.sessions.Drop(profile.ID)
	return nil
}
