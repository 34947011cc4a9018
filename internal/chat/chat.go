package chat

// Message is a single transcript entry tagged by its author role.
type Message struct {
	Role    string
	Content string
}

// Session holds one browser session's conversation. The id is generated
// once and sent with every webhook call so the remote side can keep its
// own conversation memory.
type Session struct {
	ID       string
	Messages []Message
}
