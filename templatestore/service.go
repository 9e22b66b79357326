package templatestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/martingeoffreyprive-hub/DEAL-sub001/doctemplate"
	"go.uber.org/zap"
)

// Service owns the template lifecycle on top of a RowStore.
type Service struct {
	store  RowStore
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the template and block id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewService returns a service storing templates in store
func NewService(store RowStore, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: zap.NewNop(),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Patch lists the fields of a partial update. Nil fields are left as stored;
// a non-nil empty Blocks slice clears the blocks.
type Patch struct {
	Name         *string
	Description  *string
	Type         *doctemplate.TemplateType
	Category     *string
	IsPublic     *bool
	IsPremium    *bool
	Price        *float64
	Page         *doctemplate.PageSettings
	GlobalStyles *doctemplate.GlobalStyles
	Blocks       []doctemplate.TemplateBlock
}

func (p Patch) apply(tpl *doctemplate.DocumentTemplate) {
	if p.Name != nil {
		tpl.Name = *p.Name
	}
	if p.Description != nil {
		tpl.Description = *p.Description
	}
	if p.Type != nil {
		tpl.Type = *p.Type
	}
	if p.Category != nil {
		tpl.Category = *p.Category
	}
	if p.IsPublic != nil {
		tpl.IsPublic = *p.IsPublic
	}
	if p.IsPremium != nil {
		tpl.IsPremium = *p.IsPremium
	}
	if p.Price != nil {
		tpl.Price = *p.Price
	}
	if p.Page != nil {
		tpl.Page = *p.Page
	}
	if p.GlobalStyles != nil {
		tpl.GlobalStyles = *p.GlobalStyles
	}
	if p.Blocks != nil {
		tpl.Blocks = make([]doctemplate.TemplateBlock, len(p.Blocks))
		for i, b := range p.Blocks {
			tpl.Blocks[i] = b.Clone()
		}
	}
}

// Create stores tpl as a new template owned by userID. The id, owner,
// usage count and timestamps of tpl are replaced.
func (s *Service) Create(ctx context.Context, userID string, tpl doctemplate.DocumentTemplate) (doctemplate.DocumentTemplate, error) {
	out := tpl.Clone()
	now := s.now()
	out.ID = s.newID()
	out.UserID = userID
	out.UsageCount = 0
	out.CreatedAt = now
	out.UpdatedAt = now
	s.assignBlockIDs(&out)

	if err := s.insert(ctx, out); err != nil {
		return doctemplate.DocumentTemplate{}, s.fail("create", out.ID, userID, err)
	}
	s.logger.Info("template created",
		zap.String("operation", "create"),
		zap.String("template_id", out.ID),
		zap.String("user_id", userID),
	)
	return out, nil
}

// Update applies patch to the template id. Only the owner may update.
func (s *Service) Update(ctx context.Context, userID, id string, patch Patch) (doctemplate.DocumentTemplate, error) {
	current, err := s.load(ctx, id)
	if err != nil {
		return doctemplate.DocumentTemplate{}, s.fail("update", id, userID, err)
	}
	if current.UserID != userID {
		return doctemplate.DocumentTemplate{}, s.fail("update", id, userID, ErrForbidden)
	}

	patch.apply(&current)
	current.UpdatedAt = s.now()
	s.assignBlockIDs(&current)

	if err := doctemplate.Validate(current); err != nil {
		return doctemplate.DocumentTemplate{}, s.fail("update", id, userID, err)
	}
	rec, err := ToRecord(current)
	if err == nil {
		err = s.store.Update(ctx, rec)
	}
	if err != nil {
		return doctemplate.DocumentTemplate{}, s.fail("update", id, userID, err)
	}
	s.logger.Info("template updated",
		zap.String("operation", "update"),
		zap.String("template_id", id),
		zap.String("user_id", userID),
	)
	return current, nil
}

// Duplicate copies a template the caller can see into a new private, free
// template owned by userID. An empty name appends " (copie)" to the source name.
func (s *Service) Duplicate(ctx context.Context, userID, id, name string) (doctemplate.DocumentTemplate, error) {
	src, err := s.loadVisible(ctx, userID, id)
	if err != nil {
		return doctemplate.DocumentTemplate{}, s.fail("duplicate", id, userID, err)
	}

	out := src.Clone()
	now := s.now()
	out.ID = s.newID()
	out.UserID = userID
	out.Name = strings.TrimSpace(name)
	if out.Name == "" {
		out.Name = src.Name + " (copie)"
	}
	out.IsPublic = false
	out.IsPremium = false
	out.Price = 0
	out.UsageCount = 0
	out.CreatedAt = now
	out.UpdatedAt = now

	if err := s.insert(ctx, out); err != nil {
		return doctemplate.DocumentTemplate{}, s.fail("duplicate", id, userID, err)
	}
	s.logger.Info("template duplicated",
		zap.String("operation", "duplicate"),
		zap.String("template_id", out.ID),
		zap.String("source_id", id),
		zap.String("user_id", userID),
	)
	return out, nil
}

// Get returns a template owned by userID or public. Private templates of
// other users are reported as not found.
func (s *Service) Get(ctx context.Context, userID, id string) (doctemplate.DocumentTemplate, error) {
	tpl, err := s.loadVisible(ctx, userID, id)
	if err != nil {
		return doctemplate.DocumentTemplate{}, fmt.Errorf("failed to get template: %w", err)
	}
	return tpl, nil
}

// List returns the templates of userID and every public template,
// most recently updated first. A non-empty kind restricts the template type.
func (s *Service) List(ctx context.Context, userID string, kind doctemplate.TemplateType) ([]doctemplate.DocumentTemplate, error) {
	records, err := s.store.List(ctx, ListFilter{UserID: userID, IncludePublic: true, Type: string(kind)})
	if err != nil {
		return nil, s.fail("list", "", userID, err)
	}
	out := make([]doctemplate.DocumentTemplate, 0, len(records))
	for _, r := range records {
		tpl, err := FromRecord(r)
		if err != nil {
			return nil, s.fail("list", r.ID, userID, err)
		}
		out = append(out, tpl)
	}
	return out, nil
}

// Delete removes a template. Only the owner may delete.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return s.fail("delete", id, userID, err)
	}
	if rec.UserID != userID {
		return s.fail("delete", id, userID, ErrForbidden)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return s.fail("delete", id, userID, err)
	}
	s.logger.Info("template deleted",
		zap.String("operation", "delete"),
		zap.String("template_id", id),
		zap.String("user_id", userID),
	)
	return nil
}

// RecordUsage counts one more document generated from the template.
func (s *Service) RecordUsage(ctx context.Context, id string) error {
	if err := s.store.IncrementUsage(ctx, id); err != nil {
		return s.fail("record usage of", id, "", err)
	}
	return nil
}

func (s *Service) insert(ctx context.Context, tpl doctemplate.DocumentTemplate) error {
	if err := doctemplate.Validate(tpl); err != nil {
		return err
	}
	rec, err := ToRecord(tpl)
	if err != nil {
		return err
	}
	return s.store.Insert(ctx, rec)
}

func (s *Service) load(ctx context.Context, id string) (doctemplate.DocumentTemplate, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return doctemplate.DocumentTemplate{}, err
	}
	return FromRecord(rec)
}

func (s *Service) loadVisible(ctx context.Context, userID, id string) (doctemplate.DocumentTemplate, error) {
	tpl, err := s.load(ctx, id)
	if err != nil {
		return doctemplate.DocumentTemplate{}, err
	}
	if tpl.UserID != userID && !tpl.IsPublic {
		return doctemplate.DocumentTemplate{}, ErrNotFound
	}
	return tpl, nil
}

func (s *Service) assignBlockIDs(tpl *doctemplate.DocumentTemplate) {
	for i := range tpl.Blocks {
		if strings.TrimSpace(tpl.Blocks[i].ID) == "" {
			tpl.Blocks[i].ID = s.newID()
		}
	}
}

func (s *Service) fail(op, id, userID string, err error) error {
	s.logger.Warn("template operation failed",
		zap.String("operation", op),
		zap.String("template_id", id),
		zap.String("user_id", userID),
		zap.Error(err),
	)
	return fmt.Errorf("failed to %s template: %w", op, err)
}
