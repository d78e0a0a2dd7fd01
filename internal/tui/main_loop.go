// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-chat-messenger/internal/service"
	"github.com/MKhiriev/go-chat-messenger/models"
)

type loopMode int

const (
	modeList loopMode = iota
	modeChat
)

type listTab int

const (
	tabConversations listTab = iota
	tabUsers
)

// mainLoopModel hosts the two screens of the signed-in client: the chat
// list (conversations and user directory) and the open conversation view.
// The chat list refreshes when the activity cursor reports new messages;
// the open conversation is driven by the thread poller, whose snapshots
// arrive through threadCh.
type mainLoopModel struct {
	ctx          context.Context
	services     *service.ClientServices
	session      models.Session
	pollInterval time.Duration

	mode loopMode
	tab  listTab

	conversations []models.Conversation
	users         []models.User
	idx           int

	searching   bool
	searchInput textinput.Model
	filter      string

	chatID       string
	other        models.User
	chatMessages []models.Message
	chatInput    textinput.Model
	threadCh     chan service.ThreadSnapshot
	chatDone     chan struct{}
	deliver      func(service.ThreadSnapshot)
	sending      bool

	status string
	errMsg string
	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session models.Session, pollInterval time.Duration) mainLoopModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "display name"
	searchInput.CharLimit = 50
	searchInput.Width = 30

	chatInput := textinput.New()
	chatInput.Placeholder = "type a message"
	chatInput.CharLimit = 1000
	chatInput.Width = 50

	return mainLoopModel{
		ctx:          ctx,
		services:     services,
		session:      session,
		pollInterval: pollInterval,
		searchInput:  searchInput,
		chatInput:    chatInput,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadConversations(), m.cmdPollTick())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case conversationsLoadedMsg:
		m.conversations = msg.conversations
		m.clampIdx()
		return m, nil

	case usersLoadedMsg:
		m.users = msg.users
		m.clampIdx()
		return m, nil

	case pollTickMsg:
		if m.mode == modeList {
			// The open conversation has its own poller; the list relies on
			// the activity cursor instead.
			return m, tea.Batch(m.cmdCheckActivity(), m.cmdPollTick())
		}
		return m, m.cmdPollTick()

	case activityMsg:
		if msg.count > 0 && m.mode == modeList {
			return m, m.cmdLoadConversations()
		}
		return m, nil

	case chatOpenedMsg:
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		return m.openChat(msg.conversationID, models.User{})

	case threadSnapshotMsg:
		if m.mode != modeChat {
			return m, nil
		}
		if msg.snapshot.ConversationID == m.chatID {
			m.other = msg.snapshot.OtherUser
			m.chatMessages = msg.snapshot.Messages
		}
		return m, m.waitForThread()

	case sendDoneMsg:
		// A failed send stays silent: the service already logged it, the
		// typed text is not restored, and the message simply never shows up
		// in the thread.
		m.sending = false
		return m, nil

	case copiedMsg:
		m.status = "copied to clipboard"
		return m, m.cmdClearStatusLater()

	case copyFailedMsg:
		m.status = "copy failed"
		return m, m.cmdClearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeChat {
			return m.updateChatKeys(msg)
		}
		return m.updateListKeys(msg)
	}

	return m, nil
}

func (m mainLoopModel) updateListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch {
		case key.Matches(msg, keys.esc):
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		case key.Matches(msg, keys.enter):
			m.searching = false
			m.searchInput.Blur()
			m.filter = strings.TrimSpace(m.searchInput.Value())
			m.idx = 0
			return m, m.cmdReloadActiveTab()
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit

	case key.Matches(msg, keys.tab):
		if m.tab == tabConversations {
			m.tab = tabUsers
		} else {
			m.tab = tabConversations
		}
		m.idx = 0
		return m, m.cmdReloadActiveTab()

	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil

	case key.Matches(msg, keys.down):
		if m.idx < m.activeTabLen()-1 {
			m.idx++
		}
		return m, nil

	case key.Matches(msg, keys.search):
		m.searching = true
		m.searchInput.SetValue(m.filter)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.esc):
		if m.filter != "" {
			m.filter = ""
			m.searchInput.SetValue("")
			return m, m.cmdReloadActiveTab()
		}
		return m, nil

	case key.Matches(msg, keys.refresh):
		return m, m.cmdReloadActiveTab()

	case key.Matches(msg, keys.enter):
		if m.tab == tabConversations {
			if m.idx >= len(m.conversations) {
				return m, nil
			}
			selected := m.conversations[m.idx]
			return m.openChat(selected.ConversationID, selected.OtherUser)
		}
		if m.idx >= len(m.users) {
			return m, nil
		}
		return m, m.cmdStartChat(m.users[m.idx].UserID)
	}

	return m, nil
}

func (m mainLoopModel) updateChatKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.interrupt):
		m.closeChat()
		return m, tea.Quit

	case key.Matches(msg, keys.esc):
		m.closeChat()
		m.mode = modeList
		return m, m.cmdLoadConversations()

	case key.Matches(msg, keys.copy):
		if last := m.lastMessageText(); last != "" {
			return m, cmdCopyToClipboard(last)
		}
		return m, nil

	case key.Matches(msg, keys.enter):
		if m.sending {
			return m, nil
		}
		text := m.chatInput.Value()
		m.chatInput.SetValue("")
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		m.sending = true
		return m, m.cmdSend(text)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

// openChat switches to the conversation view and starts its poller. The
// first snapshot arrives from the immediate sync cycle the poller runs on
// start.
func (m mainLoopModel) openChat(conversationID string, other models.User) (tea.Model, tea.Cmd) {
	m.closeChat()

	ch := make(chan service.ThreadSnapshot, 8)
	deliver := func(snapshot service.ThreadSnapshot) {
		// Keep the latest snapshot when the UI lags behind.
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}

	m.mode = modeChat
	m.errMsg = ""
	m.chatID = conversationID
	m.other = other
	m.chatMessages = nil
	m.threadCh = ch
	m.chatDone = make(chan struct{})
	m.deliver = deliver
	m.chatInput.SetValue("")
	m.chatInput.Focus()

	m.services.ThreadPoller.Start(m.ctx, conversationID, deliver)

	return m, tea.Batch(m.waitForThread(), textinput.Blink)
}

// closeChat stops the poller and releases the snapshot subscription.
func (m *mainLoopModel) closeChat() {
	if m.chatDone == nil {
		return
	}
	m.services.ThreadPoller.Stop()
	close(m.chatDone)
	m.chatDone = nil
	m.threadCh = nil
	m.deliver = nil
	m.chatID = ""
	m.chatInput.Blur()
}

// waitForThread subscribes to the next poller snapshot. The done channel
// unblocks the subscription when the chat closes, so no goroutine outlives
// the view it serves.
func (m mainLoopModel) waitForThread() tea.Cmd {
	ch := m.threadCh
	done := m.chatDone

	return func() tea.Msg {
		select {
		case snapshot := <-ch:
			return threadSnapshotMsg{snapshot: snapshot}
		case <-done:
			return nil
		}
	}
}

func (m mainLoopModel) cmdLoadConversations() tea.Cmd {
	ctx, services, filter := m.ctx, m.services, m.filter
	return func() tea.Msg {
		return conversationsLoadedMsg{conversations: services.DirectoryService.Conversations(ctx, filter)}
	}
}

func (m mainLoopModel) cmdLoadUsers() tea.Cmd {
	ctx, services, filter := m.ctx, m.services, m.filter
	return func() tea.Msg {
		return usersLoadedMsg{users: services.DirectoryService.Users(ctx, filter)}
	}
}

func (m mainLoopModel) cmdReloadActiveTab() tea.Cmd {
	if m.tab == tabConversations {
		return m.cmdLoadConversations()
	}
	return m.cmdLoadUsers()
}

func (m mainLoopModel) cmdPollTick() tea.Cmd {
	return tea.Tick(m.pollInterval, func(time.Time) tea.Msg { return pollTickMsg{} })
}

func (m mainLoopModel) cmdCheckActivity() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		return activityMsg{count: len(services.DirectoryService.PollNew(ctx))}
	}
}

func (m mainLoopModel) cmdStartChat(userID string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		conversationID, err := services.DirectoryService.StartConversation(ctx, userID)
		return chatOpenedMsg{conversationID: conversationID, err: err}
	}
}

func (m mainLoopModel) cmdSend(text string) tea.Cmd {
	ctx, services := m.ctx, m.services
	conversationID, deliver := m.chatID, m.deliver

	return func() tea.Msg {
		err := services.ThreadService.Send(ctx, conversationID, text)
		if err == nil {
			// Out-of-band cycle so the sent message shows up without
			// waiting for the next tick.
			services.ThreadPoller.Trigger(conversationID, deliver)
		}
		return sendDoneMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{}
		}
		return copiedMsg{}
	}
}

func (m mainLoopModel) cmdClearStatusLater() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) lastMessageText() string {
	if len(m.chatMessages) == 0 {
		return ""
	}
	return m.chatMessages[len(m.chatMessages)-1].Text
}

func (m mainLoopModel) activeTabLen() int {
	if m.tab == tabConversations {
		return len(m.conversations)
	}
	return len(m.users)
}

func (m *mainLoopModel) clampIdx() {
	if max := m.activeTabLen() - 1; m.idx > max {
		if max < 0 {
			m.idx = 0
		} else {
			m.idx = max
		}
	}
}

func (m mainLoopModel) View() string {
	if m.mode == modeChat {
		return m.viewChat()
	}
	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	switch m.tab {
	case tabConversations:
		b.WriteString("[Chats] │  Contacts \n\n")
		b.WriteString(m.renderConversations())
	default:
		b.WriteString(" Chats  │ [Contacts]\n\n")
		b.WriteString(m.renderUsers())
	}

	if m.searching {
		b.WriteString("\nSearch: ")
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	} else if m.filter != "" {
		b.WriteString("\nFilter: ")
		b.WriteString(m.filter)
		b.WriteString("  (esc to clear)\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "MESSENGER — " + m.session.DisplayName
	hotKeys := "enter: open │ tab: switch │ /: search │ r: refresh │ l: logout │ q: quit"
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) renderConversations() string {
	if len(m.conversations) == 0 {
		return "No conversations yet. Press tab to find someone to talk to."
	}

	var b strings.Builder
	for i, conversation := range m.conversations {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		name := conversation.OtherUser.DisplayName
		if conversation.OtherUser.Online {
			name += " " + onlineStyle.Render("●")
		}

		line := fmt.Sprintf("%s %-24s %s", cursor, fitText(name, 24), fitText(conversation.LastMessage, 32))
		if conversation.Timestamp != "" {
			line += "  " + helpStyle.Render(conversation.Timestamp)
		}
		if conversation.UnreadCount > 0 {
			line += "  " + unreadStyle.Render(fmt.Sprintf("(%d)", conversation.UnreadCount))
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m mainLoopModel) renderUsers() string {
	if len(m.users) == 0 {
		return "Nobody found."
	}

	var b strings.Builder
	for i, user := range m.users {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		status := helpStyle.Render("offline")
		if user.Online {
			status = onlineStyle.Render("online")
		}

		b.WriteString(fmt.Sprintf("%s %-24s %s\n", cursor, fitText(user.DisplayName, 24), status))
	}

	return b.String()
}

func (m mainLoopModel) viewChat() string {
	var b strings.Builder

	for _, message := range m.chatMessages {
		own := message.SenderID == m.session.UserID

		name := m.other.DisplayName
		if own {
			name = "You"
		}

		line := fmt.Sprintf("[%s] %s: %s", message.Timestamp, name, message.Text)
		if own {
			line += " " + helpStyle.Render(statusTicks(message.Status))
			b.WriteString(line)
		} else {
			b.WriteString(incomingStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if len(m.chatMessages) == 0 {
		b.WriteString("No messages yet. Say hello.\n")
	}

	b.WriteString("\n> ")
	b.WriteString(m.chatInput.View())
	b.WriteString("\n")

	if m.sending {
		b.WriteString("\nsending...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}

	title := "CHAT — " + m.other.DisplayName
	if m.other.Online {
		title += " " + onlineStyle.Render("● online")
	}
	hotKeys := "enter: send │ ctrl+y: copy last │ esc: back"
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
