// Package tasks holds the task list state, its stored form, and the writer
// that mirrors it into a key-value store.
package tasks

import (
	"context"
	"log"
	"strings"
)

// Reader is the read half of the key-value store.
type Reader interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

// Writer is the write half of the key-value store.
type Writer interface {
	Set(ctx context.Context, key, value string) error
}

// Store is satisfied by store.KV.
type Store interface {
	Reader
	Writer
}

// Persister receives a copy of the whole list after every mutation.
type Persister interface {
	Persist(list []string)
}

// Options configure a Controller.
type Options struct {
	// Store is where Hydrate reads from. A nil Store hydrates nothing.
	Store Reader
	// Key defaults to "tasks".
	Key string
	// Persister is handed the list after each mutation. Nil disables persistence.
	Persister Persister
	Log       *log.Logger
}

const defaultKey = "tasks"

// Controller owns the task list, the draft buffer and the selection cursor of
// the task list screen. It is confined to a single event loop.
type Controller struct {
	store     Reader
	key       string
	persister Persister
	log       *log.Logger

	tasks []string
	draft string

	cursor      int
	optionsOpen bool
	inputOpen   bool
}

// NewController returns a controller with an empty list and no selection.
func NewController(o Options) *Controller {
	if o.Key == "" {
		o.Key = defaultKey
	}
	if o.Log == nil {
		o.Log = log.Default()
	}
	return &Controller{
		store:     o.Store,
		key:       o.Key,
		persister: o.Persister,
		log:       o.Log,
		cursor:    -1,
	}
}

// Load reads and decodes the list stored at key. A missing value yields nil;
// read and decode failures are logged and also yield nil.
func Load(ctx context.Context, r Reader, key string, logger *log.Logger) []string {
	if r == nil {
		return nil
	}
	if logger == nil {
		logger = log.Default()
	}
	raw, ok, err := r.Get(ctx, key)
	if err != nil {
		logger.Printf("hydrate: read %q: %v", key, err)
		return nil
	}
	if !ok {
		return nil
	}
	list, err := Decode(raw)
	if err != nil {
		logger.Printf("hydrate: %q: %v", key, err)
		return nil
	}
	return list
}

// Hydrate replaces the list with the stored one. It never fails: a missing or
// unreadable value leaves the list as it is.
func (c *Controller) Hydrate(ctx context.Context) {
	if list := Load(ctx, c.store, c.key, c.log); list != nil {
		c.Restore(list)
	}
}

// Restore replaces the list with a previously loaded one without persisting it.
func (c *Controller) Restore(list []string) {
	c.tasks = append([]string(nil), list...)
	if _, ok := c.Cursor(); !ok {
		c.CloseOptions()
	}
}

// Tasks returns a copy of the list in display order.
func (c *Controller) Tasks() []string {
	return append([]string(nil), c.tasks...)
}

func (c *Controller) Len() int { return len(c.tasks) }

func (c *Controller) Draft() string { return c.draft }

func (c *Controller) InputOpen() bool { return c.inputOpen }

func (c *Controller) OptionsOpen() bool { return c.optionsOpen }

// Cursor reports the selected index while it is valid for the current list.
func (c *Controller) Cursor() (int, bool) {
	if c.cursor < 0 || c.cursor >= len(c.tasks) {
		return -1, false
	}
	return c.cursor, true
}

// AddTask appends the trimmed text, clears the draft and closes the input
// panel. Blank text is ignored.
func (c *Controller) AddTask(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	c.tasks = append(c.tasks, text)
	c.draft = ""
	c.inputOpen = false
	c.persist()
	return true
}

// OpenTaskOptions selects index i and opens the action menu.
func (c *Controller) OpenTaskOptions(i int) bool {
	if i < 0 || i >= len(c.tasks) {
		return false
	}
	c.cursor = i
	c.optionsOpen = true
	return true
}

// EditTask copies the selected task into the draft and opens the input panel.
// Submitting the draft appends a new task; the original stays where it is.
func (c *Controller) EditTask() bool {
	i, ok := c.Cursor()
	if !ok {
		return false
	}
	c.draft = c.tasks[i]
	c.inputOpen = true
	c.CloseOptions()
	return true
}

// DeleteTask removes the selected task and closes the action menu.
func (c *Controller) DeleteTask() bool {
	i, ok := c.Cursor()
	if !ok {
		return false
	}
	c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
	c.CloseOptions()
	c.persist()
	return true
}

// CloseOptions closes the action menu and drops the selection.
func (c *Controller) CloseOptions() {
	c.optionsOpen = false
	c.cursor = -1
}

// RemoveAt deletes the task at index i.
func (c *Controller) RemoveAt(i int) bool {
	if !c.OpenTaskOptions(i) {
		return false
	}
	return c.DeleteTask()
}

// OpenInput shows the input panel. The draft keeps whatever it holds.
func (c *Controller) OpenInput() {
	c.inputOpen = true
}

func (c *Controller) SetDraft(text string) {
	c.draft = text
}

// CancelInput closes the input panel and discards the draft.
func (c *Controller) CancelInput() {
	c.inputOpen = false
	c.draft = ""
}

// Submit commits the draft through AddTask.
func (c *Controller) Submit() bool {
	return c.AddTask(c.draft)
}

func (c *Controller) persist() {
	if c.persister == nil {
		return
	}
	c.persister.Persist(c.Tasks())
}
