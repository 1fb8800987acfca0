package application

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"petverse/internal/domain"
	"petverse/internal/domain/entities"
	"petverse/internal/infrastructure/i18n"
	"petverse/internal/infrastructure/storage"
	"petverse/internal/mocks"
	"petverse/internal/ports/output"
)

type scheduled struct {
	delay time.Duration
	f     func()
	fired bool
}

// fakeScheduler collects callbacks until the test fires them.
type fakeScheduler struct {
	mu    sync.Mutex
	tasks []*scheduled
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, &scheduled{delay: d, f: f})
}

func (s *fakeScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *fakeScheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []time.Duration
	for _, task := range s.tasks {
		out = append(out, task.delay)
	}
	return out
}

// Fire runs the i-th scheduled callback once.
func (s *fakeScheduler) Fire(i int) {
	s.mu.Lock()
	task := s.tasks[i]
	if task.fired {
		s.mu.Unlock()
		return
	}
	task.fired = true
	s.mu.Unlock()
	task.f()
}

func (s *fakeScheduler) FireAll() {
	for i := 0; i < s.Len(); i++ {
		s.Fire(i)
	}
}

type fakeToast struct {
	mu    sync.Mutex
	shown []entities.Notification
	hides int
}

func (f *fakeToast) ShowToast(n entities.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shown = append(f.shown, n)
}

func (f *fakeToast) HideToast() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hides++
}

func (f *fakeToast) Shown() []entities.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.shown)
}

func (f *fakeToast) Last(t *testing.T) entities.Notification {
	t.Helper()
	shown := f.Shown()
	require.NotEmpty(t, shown, "no notification shown")
	return shown[len(shown)-1]
}

func (f *fakeToast) Hides() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hides
}

type fakeHeader struct {
	mu      sync.Mutex
	renders int
	last    entities.HeaderView
}

func (f *fakeHeader) RenderHeader(view entities.HeaderView) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.renders++
	f.last = view
}

func (f *fakeHeader) Last() entities.HeaderView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

type fakeChat struct {
	mu       sync.Mutex
	opened   int
	messages []entities.Message
}

func (f *fakeChat) ShowPanel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened++
}

func (f *fakeChat) ClearMessages() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = nil
}

func (f *fakeChat) AppendMessage(m entities.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, m)
}

func (f *fakeChat) Messages() []entities.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.messages)
}

func (f *fakeChat) Opened() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opened
}

type fakeNode struct {
	key         string
	kind        output.NodeKind
	text        string
	placeholder string
}

func (n *fakeNode) Key() string             { return n.key }
func (n *fakeNode) Kind() output.NodeKind   { return n.kind }
func (n *fakeNode) SetText(s string)        { n.text = s }
func (n *fakeNode) SetPlaceholder(s string) { n.placeholder = s }

type fakeDocument struct {
	nodes    map[string]*fakeNode
	order    []string
	title    string
	selected string
}

// newFakeDocument mirrors a few nodes of the landing page, still in English.
func newFakeDocument() *fakeDocument {
	d := &fakeDocument{nodes: map[string]*fakeNode{}, title: "PetVerse"}
	d.add("title.home", output.NodeTitle, "PetVerse")
	d.add("nav.home", output.NodeText, "Home")
	d.add("nav.volunteer", output.NodeText, "Volunteer")
	d.add("hero.title", output.NodeText, "Find your new best friend")
	d.add("chat.placeholder", output.NodeInput, "")
	d.add("no.such.key", output.NodeText, "untouched")
	return d
}

func (d *fakeDocument) add(key string, kind output.NodeKind, text string) {
	n := &fakeNode{key: key, kind: kind, text: text}
	d.nodes[key] = n
	d.order = append(d.order, key)
}

func (d *fakeDocument) TranslatableNodes() []output.Node {
	out := make([]output.Node, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, d.nodes[k])
	}
	return out
}

func (d *fakeDocument) SetTitle(s string)        { d.title = s }
func (d *fakeDocument) SelectLocale(code string) { d.selected = code }

type fakeNavigator struct {
	mu      sync.Mutex
	targets []string
}

func (n *fakeNavigator) Navigate(target string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets = append(n.targets, target)
}

func (n *fakeNavigator) Targets() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.targets)
}

// failingStore wraps a store and fails every Set.
type failingStore struct {
	output.KeyValueStore
}

var errDiskFull = errors.New("disk full")

func (failingStore) Set(context.Context, string, string) error { return errDiskFull }

type fixture struct {
	ctrl       *gomock.Controller
	store      output.KeyValueStore
	toast      *fakeToast
	header     *fakeHeader
	chat       *fakeChat
	doc        *fakeDocument
	nav        output.Navigator
	sched      *fakeScheduler
	transport  *mocks.MockChatTransport
	translator output.T
	dictionary domain.Dictionary
	log        *slog.Logger
	cfg        PageConfig
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := slog.New(slog.DiscardHandler)
	dict, err := i18n.LoadDictionary(log)
	require.NoError(t, err)
	return &fixture{
		ctrl:       ctrl,
		store:      storage.NewMemoryStore(),
		toast:      &fakeToast{},
		header:     &fakeHeader{},
		chat:       &fakeChat{},
		doc:        newFakeDocument(),
		nav:        &fakeNavigator{},
		sched:      &fakeScheduler{},
		transport:  mocks.NewMockChatTransport(ctrl),
		translator: i18n.NewTranslator("en", log),
		dictionary: dict,
		log:        log,
		cfg: PageConfig{
			ChatIconPolicy:       domain.ChatIconAlways,
			LoginTarget:          "/login",
			LogoutTarget:         "/",
			LogoutDelay:          1500 * time.Millisecond,
			NotificationDuration: NotificationDuration,
			ChatTimeout:          time.Second,
		},
	}
}

func (f *fixture) deps() PageDeps {
	return PageDeps{
		Store:      f.store,
		Toast:      f.toast,
		Header:     f.header,
		Chat:       f.chat,
		Document:   f.doc,
		Navigator:  f.nav,
		Scheduler:  f.sched,
		Transport:  f.transport,
		Translator: f.translator,
		Dictionary: f.dictionary,
		Logger:     f.log,
	}
}

// page builds and loads a page over the fixture.
func (f *fixture) page(t *testing.T) *Page {
	t.Helper()
	p, err := NewPage(f.deps(), f.cfg)
	require.NoError(t, err)
	require.NoError(t, p.Load(context.Background()))
	return p
}

func (f *fixture) loggedIn(t *testing.T, name string) *Page {
	t.Helper()
	p := f.page(t)
	require.NoError(t, p.Identity.Login(context.Background(), name))
	return p
}

func ptr[T any](v T) *T { return &v }
