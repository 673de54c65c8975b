// Package dashboard is the session-level orchestrator: it tracks the
// active section, the search term, and the modal editor state, and it
// wires form submissions into collection mutations. All four error
// kinds of the engine (unknown type, validation, not found, duplicate
// id) are handled at this boundary; none escapes as a crash.
package dashboard

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/otifyhq/console/internal/form"
	"github.com/otifyhq/console/internal/record"
	"github.com/otifyhq/console/internal/schema"
	"github.com/otifyhq/console/internal/store"
)

// Mode distinguishes the two ways the modal editor opens.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Controller holds one session's dashboard state. It is constructed
// fresh per session, mutated only through its methods, and discarded at
// session end; nothing survives the process.
type Controller struct {
	sessionID string
	stores    *store.Set
	log       *slog.Logger
	newID     func(singular string) string

	section   string // entity type tag; empty until a section is chosen
	search    string
	modalOpen bool
	mode      Mode
	target    *record.Record
	draft     *form.Draft
}

// NewController creates a dashboard session over the given collections.
func NewController(stores *store.Set, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	id := uuid.NewString()
	return &Controller{
		sessionID: id,
		stores:    stores,
		log:       log.With(slog.String("session", id)),
		newID:     store.NewID,
	}
}

// SessionID returns the session correlation id used in diagnostics.
func (c *Controller) SessionID() string { return c.sessionID }

// Section returns the active entity type tag, or "" before a section
// has been chosen.
func (c *Controller) Section() string { return c.section }

// SelectSection activates a section: the search term resets and any
// open modal is discarded along with its draft.
func (c *Controller) SelectSection(entityType string) error {
	if _, err := schema.Get(entityType); err != nil {
		return err
	}
	c.section = entityType
	c.search = ""
	c.Close()
	return nil
}

// Schema returns the active section's schema, or nil if none is active.
func (c *Controller) Schema() *schema.Schema {
	if c.section == "" {
		return nil
	}
	s, _ := schema.Get(c.section)
	return s
}

// SearchTerm returns the current search term.
func (c *Controller) SearchTerm() string { return c.search }

// SetSearch updates the search term for the active section.
func (c *Controller) SetSearch(term string) { c.search = term }

// Columns surfaces the active section's list-view columns.
func (c *Controller) Columns() []schema.Column {
	s := c.Schema()
	if s == nil {
		return nil
	}
	return s.Columns
}

// Rows returns the active section's records filtered by the search
// term, in insertion order.
func (c *Controller) Rows() []record.Record {
	if c.section == "" {
		return nil
	}
	coll, err := c.stores.Collection(c.section)
	if err != nil {
		return nil
	}
	term := c.search
	return coll.Filter(func(r record.Record) bool {
		return MatchesSearch(r, term)
	})
}

// ModalOpen reports whether the modal editor is showing.
func (c *Controller) ModalOpen() bool { return c.modalOpen }

// ModalMode returns the open modal's mode.
func (c *Controller) ModalMode() Mode { return c.mode }

// Draft returns the form draft backing the open modal, or nil.
func (c *Controller) Draft() *form.Draft { return c.draft }

// ModalTitle returns the modal shell's title for the current mode.
func (c *Controller) ModalTitle() string {
	if c.section == "" {
		return ""
	}
	if c.modalOpen && c.mode == ModeEdit {
		return "Edit " + c.section
	}
	return "Add New " + c.section
}

// OpenCreate opens the modal with an empty draft for the active section.
func (c *Controller) OpenCreate() error {
	if c.section == "" {
		return fmt.Errorf("no active section")
	}
	d, err := form.Open(c.section, nil)
	if err != nil {
		return err
	}
	c.draft = d
	c.target = nil
	c.mode = ModeCreate
	c.modalOpen = true
	return nil
}

// OpenEdit opens the modal over the record with the given id. A missing
// id is a logged no-op: the modal stays closed and no error surfaces,
// since the caller may be racing a stale identifier.
func (c *Controller) OpenEdit(id string) error {
	if c.section == "" {
		return fmt.Errorf("no active section")
	}
	coll, err := c.stores.Collection(c.section)
	if err != nil {
		return err
	}
	rec, err := coll.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.log.Warn("edit target missing", "section", c.section, "id", id)
			return nil
		}
		return err
	}
	d, err := form.Open(c.section, &rec)
	if err != nil {
		return err
	}
	c.draft = d
	c.target = &rec
	c.mode = ModeEdit
	c.modalOpen = true
	return nil
}

// Submit commits the open draft. Validation failures are returned to
// the caller with the modal left open and nothing mutated. On success
// the modal closes: creates insert under a freshly allocated id, edits
// update in place with the original id preserved.
func (c *Controller) Submit() error {
	if !c.modalOpen || c.draft == nil {
		return nil
	}
	fields, err := c.draft.Submit()
	if err != nil {
		return err
	}
	coll, err := c.stores.Collection(c.section)
	if err != nil {
		return err
	}

	if c.mode == ModeEdit && c.target != nil {
		if err := coll.UpdateByID(c.target.ID, fields); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.log.Warn("update target missing", "section", c.section, "id", c.target.ID)
				c.Close()
				return nil
			}
			return err
		}
		c.Close()
		return nil
	}

	s := c.Schema()
	if err := c.insertWithRetry(coll, s.Singular, fields); err != nil {
		return err
	}
	c.Close()
	return nil
}

// insertWithRetry re-allocates once on an id collision before giving
// up; the store rejects the insert rather than overwriting.
func (c *Controller) insertWithRetry(coll *store.Collection, singular string, fields record.Fields) error {
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		id := c.newID(singular)
		err = coll.Insert(record.Record{ID: id, Fields: fields})
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrDuplicateID) {
			return err
		}
		c.log.Error("id collision on insert", "section", c.section, "id", id)
	}
	return err
}

// Close dismisses the modal and discards the draft unconditionally. No
// partial commit is ever visible to the store.
func (c *Controller) Close() {
	c.modalOpen = false
	c.draft = nil
	c.target = nil
}

// Delete removes the record with the given id from the active section.
// Callers invoke this only after user confirmation. A missing id is a
// logged no-op; collections are independent, so nothing else changes.
func (c *Controller) Delete(id string) error {
	if c.section == "" {
		return fmt.Errorf("no active section")
	}
	coll, err := c.stores.Collection(c.section)
	if err != nil {
		return err
	}
	if err := coll.DeleteByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.log.Warn("delete target missing", "section", c.section, "id", id)
			return nil
		}
		return err
	}
	return nil
}
