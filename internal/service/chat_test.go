package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohealth/healthbot/internal/assistant"
	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/domain"
)

// fakeChatStore is an in-memory ChatStore.
type fakeChatStore struct {
	chats    map[int64]*domain.Chat
	messages map[int64][]domain.Message
	hasDocs  bool
	nextID   int64
	touched  int
}

func newFakeChatStore() *fakeChatStore {
	return &fakeChatStore{
		chats:    map[int64]*domain.Chat{},
		messages: map[int64][]domain.Message{},
		nextID:   1,
	}
}

func (f *fakeChatStore) addChat(userID int64, title string) *domain.Chat {
	c := &domain.Chat{ID: f.nextID, UserID: userID, Title: title}
	f.chats[c.ID] = c
	f.nextID++
	return c
}

func (f *fakeChatStore) CreateChat(_ context.Context, userID int64, title string) (*domain.Chat, error) {
	return f.addChat(userID, title), nil
}

func (f *fakeChatStore) GetUserChat(_ context.Context, userID, chatID int64) (*domain.Chat, error) {
	c, ok := f.chats[chatID]
	if !ok || c.UserID != userID {
		return nil, domain.ErrChatNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeChatStore) ListChatsByUser(_ context.Context, userID int64) ([]domain.Chat, error) {
	var out []domain.Chat
	for _, c := range f.chats {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeChatStore) UpdateChatTitle(_ context.Context, chatID int64, title string) error {
	f.chats[chatID].Title = title
	return nil
}

func (f *fakeChatStore) TouchChat(_ context.Context, chatID int64) error {
	f.touched++
	return nil
}

func (f *fakeChatStore) SetChatShareID(_ context.Context, chatID int64, shareID string) error {
	f.chats[chatID].ShareID = &shareID
	return nil
}

func (f *fakeChatStore) DeleteChat(_ context.Context, chatID int64) error {
	delete(f.chats, chatID)
	delete(f.messages, chatID)
	return nil
}

func (f *fakeChatStore) AddMessage(_ context.Context, chatID int64, role, content string) (*domain.Message, error) {
	m := domain.Message{ID: int64(len(f.messages[chatID]) + 1), ChatID: chatID, Role: role, Content: content}
	f.messages[chatID] = append(f.messages[chatID], m)
	return &m, nil
}

func (f *fakeChatStore) GetMessages(_ context.Context, chatID int64) ([]domain.Message, error) {
	return f.messages[chatID], nil
}

func (f *fakeChatStore) ChatHasDocuments(_ context.Context, chatID int64) (bool, error) {
	return f.hasDocs, nil
}

type fakeResponder struct {
	reply   string
	refused bool
	err     error
	calls   int
	lastReq assistant.Request
}

func (f *fakeResponder) Respond(_ context.Context, req assistant.Request) (string, bool, error) {
	f.calls++
	f.lastReq = req
	return f.reply, f.refused, f.err
}

type fakeTitler struct {
	title string
	err   error
	calls int
}

func (f *fakeTitler) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.title, f.err
}

func TestSendPersistsBothTurnsAndTitles(t *testing.T) {
	store := newFakeChatStore()
	chat := store.addChat(5, config.DefaultChatTitle)
	titler := &fakeTitler{title: "Fever home care"}
	svc := NewChatService(store, &fakeResponder{reply: "drink fluids"}, titler)

	res, err := svc.Send(context.Background(), 5, chat.ID, " I have a fever ", "en")
	require.NoError(t, err)

	assert.Equal(t, "drink fluids", res.Reply)
	assert.Equal(t, "Fever home care", res.Title)

	msgs := store.messages[chat.ID]
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleUser, msgs[0].Role)
	assert.Equal(t, "I have a fever", msgs[0].Content)
	assert.Equal(t, domain.RoleAssistant, msgs[1].Role)
	assert.Equal(t, 1, titler.calls)
	assert.Equal(t, 1, store.touched)
}

func TestSendTitlesAtMostOnce(t *testing.T) {
	store := newFakeChatStore()
	chat := store.addChat(5, config.DefaultChatTitle)
	titler := &fakeTitler{title: "Fever home care"}
	svc := NewChatService(store, &fakeResponder{reply: "answer"}, titler)

	_, err := svc.Send(context.Background(), 5, chat.ID, "first message", "en")
	require.NoError(t, err)
	require.Equal(t, 1, titler.calls)

	res, err := svc.Send(context.Background(), 5, chat.ID, "second message", "en")
	require.NoError(t, err)

	assert.Equal(t, 1, titler.calls, "a titled chat must not hit the summarizer again")
	assert.Equal(t, "Fever home care", res.Title)
}

func TestSendRefusalKeepsDefaultTitle(t *testing.T) {
	store := newFakeChatStore()
	chat := store.addChat(5, config.DefaultChatTitle)
	titler := &fakeTitler{title: "Weather chat"}
	svc := NewChatService(store, &fakeResponder{reply: assistant.RefusalMessage, refused: true}, titler)

	res, err := svc.Send(context.Background(), 5, chat.ID, "what's the weather today", "en")
	require.NoError(t, err)

	assert.Equal(t, 0, titler.calls, "a refused message must not spend summarization tokens")
	assert.Equal(t, config.DefaultChatTitle, res.Title)
	assert.Equal(t, config.DefaultChatTitle, store.chats[chat.ID].Title)

	// The refusal itself is still part of the conversation record.
	msgs := store.messages[chat.ID]
	require.Len(t, msgs, 2)
	assert.Equal(t, assistant.RefusalMessage, msgs[1].Content)
}

func TestSendTitlesOnFirstAnsweredMessageAfterRefusal(t *testing.T) {
	store := newFakeChatStore()
	chat := store.addChat(5, config.DefaultChatTitle)
	titler := &fakeTitler{title: "Fever home care"}
	responder := &fakeResponder{reply: assistant.RefusalMessage, refused: true}
	svc := NewChatService(store, responder, titler)

	_, err := svc.Send(context.Background(), 5, chat.ID, "what's the weather today", "en")
	require.NoError(t, err)
	require.Equal(t, 0, titler.calls)

	responder.reply, responder.refused = "drink fluids", false
	res, err := svc.Send(context.Background(), 5, chat.ID, "I have a fever", "en")
	require.NoError(t, err)

	assert.Equal(t, 1, titler.calls)
	assert.Equal(t, "Fever home care", res.Title)
}

func TestSendPipelineFailurePersistsNoAssistantTurn(t *testing.T) {
	store := newFakeChatStore()
	chat := store.addChat(5, config.DefaultChatTitle)
	titler := &fakeTitler{}
	svc := NewChatService(store, &fakeResponder{err: errors.New("model down")}, titler)

	_, err := svc.Send(context.Background(), 5, chat.ID, "I have a fever", "en")
	require.Error(t, err)

	msgs := store.messages[chat.ID]
	require.Len(t, msgs, 1, "only the user turn survives a failed attempt")
	assert.Equal(t, domain.RoleUser, msgs[0].Role)
	assert.Equal(t, 0, titler.calls)
}

func TestSendEmptyMessageRejected(t *testing.T) {
	store := newFakeChatStore()
	chat := store.addChat(5, config.DefaultChatTitle)
	svc := NewChatService(store, &fakeResponder{}, &fakeTitler{})

	_, err := svc.Send(context.Background(), 5, chat.ID, "   ", "en")
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
	assert.Empty(t, store.messages[chat.ID])
}

func TestSendSnapshotsHistoryBeforeUserTurn(t *testing.T) {
	store := newFakeChatStore()
	chat := store.addChat(5, config.DefaultChatTitle)
	store.messages[chat.ID] = []domain.Message{
		{Role: domain.RoleAssistant, Content: assistant.WelcomeMessage},
	}
	store.hasDocs = true
	responder := &fakeResponder{reply: "answer"}
	svc := NewChatService(store, responder, &fakeTitler{title: "t"})

	_, err := svc.Send(context.Background(), 5, chat.ID, "I have a fever", "te")
	require.NoError(t, err)

	require.Len(t, responder.lastReq.History, 1, "the new message must not appear in its own history")
	assert.Equal(t, assistant.WelcomeMessage, responder.lastReq.History[0].Content)
	assert.True(t, responder.lastReq.HasDocuments)
	assert.Equal(t, "te", responder.lastReq.Language)
}

func TestSendTitleFailureKeepsDefault(t *testing.T) {
	store := newFakeChatStore()
	chat := store.addChat(5, config.DefaultChatTitle)
	svc := NewChatService(store, &fakeResponder{reply: "answer"}, &fakeTitler{err: errors.New("down")})

	res, err := svc.Send(context.Background(), 5, chat.ID, "I have a fever", "en")
	require.NoError(t, err, "a failed title generation must not fail the turn")
	assert.Equal(t, config.DefaultChatTitle, res.Title)
	assert.Equal(t, config.DefaultChatTitle, store.chats[chat.ID].Title)
}

func TestSendUnknownChatRejected(t *testing.T) {
	store := newFakeChatStore()
	store.addChat(5, config.DefaultChatTitle)
	svc := NewChatService(store, &fakeResponder{}, &fakeTitler{})

	_, err := svc.Send(context.Background(), 6, 1, "hello", "en")
	assert.ErrorIs(t, err, domain.ErrChatNotFound, "another user's chat must look missing")
}

func TestCreateSeedsWelcomeTurn(t *testing.T) {
	store := newFakeChatStore()
	svc := NewChatService(store, &fakeResponder{}, &fakeTitler{})

	chat, err := svc.Create(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultChatTitle, chat.Title)
	msgs := store.messages[chat.ID]
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.RoleAssistant, msgs[0].Role)
	assert.Equal(t, assistant.WelcomeMessage, msgs[0].Content)
}

func TestRenameTrimsAndCaps(t *testing.T) {
	store := newFakeChatStore()
	chat := store.addChat(5, "old")
	svc := NewChatService(store, &fakeResponder{}, &fakeTitler{})

	title, err := svc.Rename(context.Background(), 5, chat.ID, "  My fever notes  ")
	require.NoError(t, err)
	assert.Equal(t, "My fever notes", title)

	title, err = svc.Rename(context.Background(), 5, chat.ID, "   ")
	require.NoError(t, err)
	assert.Equal(t, "Chat", title)

	title, err = svc.Rename(context.Background(), 5, chat.ID, strings.Repeat("word ", 20))
	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(title)), config.MaxTitleLen)
}

func TestShareIsIdempotent(t *testing.T) {
	store := newFakeChatStore()
	chat := store.addChat(5, "t")
	svc := NewChatService(store, &fakeResponder{}, &fakeTitler{})

	first, err := svc.Share(context.Background(), 5, chat.ID)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := svc.Share(context.Background(), 5, chat.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
