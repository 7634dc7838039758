package dorkclient

import (
	"context"
	"dorker/internal/dorkgen"
	"dorker/pkg/domain"
	"dorker/pkg/serrors"
	"strings"
	"sync"
)

// State is the step of the generate and save flow a Session is in.
type State int

const (
	// StateIdle means no query has been generated for the current input.
	StateIdle State = iota
	// StateGenerating means a generate request is in flight.
	StateGenerating
	// StateGenerated means a query is ready to be copied, opened or saved.
	StateGenerated
	// StateSaved means the generated query has been saved at least once.
	StateSaved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGenerating:
		return "generating"
	case StateGenerated:
		return "generated"
	case StateSaved:
		return "saved"
	default:
		return "unknown"
	}
}

// Session holds the input, the generated dork and the cached catalog of one
// interactive user. It is safe for concurrent use.
//
// Changing the input moves the session back to StateIdle. A failed call
// leaves the session as it was before the call.
type Session struct {
	api       API
	searchURL string

	mu        sync.Mutex
	state     State
	seq       uint64 // bumped whenever the input changes
	request   domain.DorkRequest
	generated *domain.GeneratedDork
	catalog   domain.CategoryCatalog
}

// NewSession creates an idle session. searchURL is used to rebuild search
// links for loaded dorks; empty means dorkgen.DefaultSearchURL.
func NewSession(api API, searchURL string) *Session {
	return &Session{
		api:       api,
		searchURL: searchURL,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Session) Request() domain.DorkRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.request
}

// Generated returns a copy of the current dork, or nil when there is none.
func (s *Session) Generated() *domain.GeneratedDork {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generated == nil {
		return nil
	}
	g := *s.generated

	return &g
}

// SetRequest replaces the input and discards any generated dork.
func (s *Session) SetRequest(req domain.DorkRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.request = req
	s.generated = nil
	s.state = StateIdle
	s.seq++
}

// Categories returns the token catalog, fetching it on first use only.
func (s *Session) Categories(ctx context.Context) (domain.CategoryCatalog, error) {
	s.mu.Lock()
	cached := s.catalog
	s.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	catalog, err := s.api.Categories(ctx)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.catalog == nil {
		s.catalog = catalog
	}

	return s.catalog, nil
}

// Generate builds a query for the current input. Without a domain nothing is
// sent. A result arriving after the input changed is dropped.
func (s *Session) Generate(ctx context.Context) (*domain.GeneratedDork, error) {
	s.mu.Lock()
	req := s.request
	if strings.TrimSpace(req.Domain) == "" {
		s.mu.Unlock()

		return nil, serrors.With(serrors.ErrBadRequest, "please enter a domain")
	}
	prev, seq := s.state, s.seq
	s.state = StateGenerating
	s.mu.Unlock()

	res, err := s.api.Generate(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq != seq {
		return nil, serrors.With(serrors.ErrConflict, "input changed while generating")
	}
	if err != nil {
		s.state = prev

		return nil, err //nolint: wrapcheck
	}
	s.generated = res
	s.state = StateGenerated
	g := *res

	return &g, nil
}

// Save stores the generated dork under name. The description records the
// domain the dork was generated for.
func (s *Session) Save(ctx context.Context, name string) (*domain.SavedDork, error) {
	s.mu.Lock()
	if s.state != StateGenerated && s.state != StateSaved {
		s.mu.Unlock()

		return nil, serrors.With(serrors.ErrBadRequest, "please generate a dork first")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		s.mu.Unlock()

		return nil, serrors.With(serrors.ErrBadRequest, "please enter a name for the dork")
	}
	query, description, seq := s.generated.Query, "Domain: "+s.request.Domain, s.seq
	s.mu.Unlock()

	saved, err := s.api.SaveDork(ctx, name, query, description)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq == seq {
		s.state = StateSaved
	}

	return saved, nil
}

// Load makes a saved dork the current one. The search URL is rebuilt locally.
func (s *Session) Load(d domain.SavedDork) *domain.GeneratedDork {
	g := &domain.GeneratedDork{
		Query: d.Query,
		URL:   dorkgen.SearchURL(s.searchURL, d.Query),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generated = g
	s.state = StateGenerated
	s.seq++
	out := *g

	return &out
}

// Dorks lists the saved dorks without touching the session state.
func (s *Session) Dorks(ctx context.Context) ([]domain.SavedDork, error) {
	return s.api.Dorks(ctx) //nolint: wrapcheck
}

// Delete removes a saved dork without touching the session state.
func (s *Session) Delete(ctx context.Context, ID domain.SavedDorkID) error {
	return s.api.DeleteDork(ctx, ID) //nolint: wrapcheck
}
