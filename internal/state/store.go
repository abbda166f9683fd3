// internal/state/store.go
package state

import (
	"sync"
	"time"

	"github.com/trustpulse/pulse-backend/internal/genai"
	"github.com/trustpulse/pulse-backend/internal/models"
)

// Session holds everything the original single-page app kept in top-level
// component state: the current insight, locally authored reviews, the
// business directory, the signed-in user, and the chat transcript. All of it
// is memory-only and discarded when the session expires or the process
// stops.
//
// Mutations go through named transition methods; nothing outside this
// package touches the fields directly. Overlapping searches are resolved by
// the search sequence number: a fetch result is committed only if its
// sequence is still current, which makes the old implicit last-writer-wins
// behavior explicit and deterministic.
type Session struct {
	mu sync.Mutex

	id           string
	createdAt    time.Time
	lastSeen     time.Time
	user         *models.User
	product      *models.ProductInsight
	brand        *models.BrandInsight
	localReviews []models.SocialComment
	businesses   []models.BusinessListing
	chatHistory  []genai.Content
	searchSeq    uint64
}

func newSession(id string) *Session {
	now := time.Now()
	return &Session{
		id:         id,
		createdAt:  now,
		lastSeen:   now,
		businesses: SeedListings(),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) touch() {
	s.lastSeen = time.Now()
}

// BeginSearch resets the insight state for a fresh query and returns the
// sequence number the eventual commit must present.
func (s *Session) BeginSearch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.searchSeq++
	s.product = nil
	s.brand = nil
	s.localReviews = nil
	return s.searchSeq
}

// CommitProduct stores a fetched product insight unless a newer search has
// started since seq was issued. It reports whether the commit took effect.
func (s *Session) CommitProduct(seq uint64, insight *models.ProductInsight) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.searchSeq {
		return false
	}
	s.product = insight
	s.brand = nil
	return true
}

// CommitBrand is the brand-path counterpart of CommitProduct.
func (s *Session) CommitBrand(seq uint64, insight *models.BrandInsight) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.searchSeq {
		return false
	}
	s.brand = insight
	s.product = nil
	return true
}

// CurrentInsight returns whichever insight is active. At most one of the two
// is non-nil.
func (s *Session) CurrentInsight() (*models.ProductInsight, *models.BrandInsight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.product, s.brand
}

func (s *Session) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.user = user
}

func (s *Session) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// PrependReview puts a locally authored review ahead of earlier local ones,
// so the local list stays newest-first.
func (s *Session) PrependReview(review models.SocialComment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.localReviews = append([]models.SocialComment{review}, s.localReviews...)
}

func (s *Session) LocalReviews() []models.SocialComment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SocialComment, len(s.localReviews))
	copy(out, s.localReviews)
	return out
}

// PrependBusiness adds a new directory entry ahead of existing ones.
func (s *Session) PrependBusiness(listing models.BusinessListing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.businesses = append([]models.BusinessListing{listing}, s.businesses...)
}

func (s *Session) Businesses() []models.BusinessListing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.BusinessListing, len(s.businesses))
	copy(out, s.businesses)
	return out
}

// AppendChatTurn records one completed user/model exchange.
func (s *Session) AppendChatTurn(userMsg, modelMsg genai.Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.chatHistory = append(s.chatHistory, userMsg, modelMsg)
}

func (s *Session) ChatHistory() []genai.Content {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]genai.Content, len(s.chatHistory))
	copy(out, s.chatHistory)
	return out
}

func (s *Session) ResetChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatHistory = nil
}

// Store maps session IDs to their in-memory state. Idle sessions are swept
// out periodically; their tokens outlive nothing.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	maxIdle  time.Duration
}

func NewStore(maxIdle time.Duration) *Store {
	if maxIdle <= 0 {
		maxIdle = 24 * time.Hour
	}
	st := &Store{
		sessions: make(map[string]*Session),
		maxIdle:  maxIdle,
	}
	go st.sweep()
	return st
}

func (st *Store) Create(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess := newSession(id)
	st.sessions[id] = sess
	return sess
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.sessions[id]
	return sess, ok
}

// GetOrCreate resurrects a session for a still-valid token whose state was
// swept; the caller gets a fresh tab, not an error.
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if sess, ok := st.sessions[id]; ok {
		return sess
	}
	sess := newSession(id)
	st.sessions[id] = sess
	return sess
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) sweep() {
	for {
		time.Sleep(time.Minute)
		st.mu.Lock()
		for id, sess := range st.sessions {
			sess.mu.Lock()
			idle := time.Since(sess.lastSeen)
			sess.mu.Unlock()
			if idle > st.maxIdle {
				delete(st.sessions, id)
			}
		}
		st.mu.Unlock()
	}
}
