package handler

import (
	"sync"

	"sixcities/internal/domain"
	"sixcities/internal/middleware"
	"sixcities/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// view is the screen last rendered for a user
type view struct {
	route   domain.AppRoute
	page    int
	offerID int

	// reload refetches data the state already holds
	reload bool
}

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	sessions *session.Manager
	markers  MarkerRenderer
	logger   *zap.Logger

	// User dialogs (in-memory state machine)
	dialogs   map[int64]*domain.DialogData
	dialogMux sync.RWMutex

	views   map[int64]view
	viewMux sync.RWMutex

	// Per-user locks serializing callback handling
	callbackLocks map[int64]*sync.Mutex
	callbackMux   sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	tokens session.TokenStore,
	newGateway session.GatewayFactory,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		bot:           bot,
		markers:       NewTelegramMarkers(bot),
		logger:        logger,
		dialogs:       make(map[int64]*domain.DialogData),
		views:         make(map[int64]view),
		callbackLocks: make(map[int64]*sync.Mutex),
	}
	h.sessions = session.NewManager(session.Options{
		Tokens:       tokens,
		NewGateway:   newGateway,
		NewNavigator: h.navigatorFor,
		Logger:       logger,
	})
	return h
}

// Sessions returns the session manager backing the handler
func (h *Handler) Sessions() *session.Manager {
	return h.sessions
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/login", h.handleLogin)

	authorized := h.bot.Group()
	authorized.Use(middleware.AuthRequired(h.sessions, h.logger))
	authorized.Handle("/favorites", h.handleFavorites)
	authorized.Handle("/logout", h.handleLogout)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetDialog returns user's current dialog
func (h *Handler) GetDialog(userID int64) *domain.DialogData {
	h.dialogMux.RLock()
	defer h.dialogMux.RUnlock()

	dialog, exists := h.dialogs[userID]
	if !exists {
		return &domain.DialogData{State: domain.StateIdle}
	}
	return dialog
}

// SetDialog sets user's dialog
func (h *Handler) SetDialog(userID int64, dialog *domain.DialogData) {
	h.dialogMux.Lock()
	defer h.dialogMux.Unlock()
	h.dialogs[userID] = dialog
}

// ResetDialog resets user to idle state
func (h *Handler) ResetDialog(userID int64) {
	h.SetDialog(userID, &domain.DialogData{State: domain.StateIdle})
}

func (h *Handler) currentView(userID int64) view {
	h.viewMux.RLock()
	defer h.viewMux.RUnlock()

	v, ok := h.views[userID]
	if !ok {
		return view{route: domain.RouteMain, page: 1}
	}
	return v
}

func (h *Handler) setView(userID int64, v view) {
	h.viewMux.Lock()
	defer h.viewMux.Unlock()
	h.views[userID] = v
}

// userLock returns the lock serializing updates of a user
func (h *Handler) userLock(userID int64) *sync.Mutex {
	h.callbackMux.Lock()
	defer h.callbackMux.Unlock()

	lock, exists := h.callbackLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.callbackLocks[userID] = lock
	}
	return lock
}

// Callback data of static buttons
const (
	cbMain      = "main"
	cbFavorites = "favorites"
	cbLogin     = "login"
	cbLogout    = "logout"
	cbCancel    = "cancel"
	cbSort      = "sort"

	prefixPage   = "page_"
	prefixCity   = "city_"
	prefixOffer  = "offer_"
	prefixFav    = "fav_"
	prefixReview = "review_"
	prefixRate   = "rate_"
)
