package constant

const (
	// AssistantReplyContent is the stock reply the assistant posts after
	// every user message until a live inference backend is wired in.
	AssistantReplyContent = "I'm analyzing your business documents and extracting relevant insights. As your BPN Intelligence Assistant, I can help you with strategic analysis, document summarization, trend identification, and business intelligence reporting. What specific insights would you like me to provide?"
)

// Task bus topics.
const (
	TopicChatReply        = "chat.reply"
	TopicDocumentIndexing = "document.indexing"
)
