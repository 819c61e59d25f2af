package responder

// 内置关键词表名称
const (
	TableGreeting = "greeting"
	TableExtended = "extended"
)

// GreetingTable 问候关键词表
func GreetingTable() KeywordTable {
	return NewKeywordTable([]Rule{
		{Pattern: "hello", Response: "Hello!"},
		{Pattern: "hi", Response: "Hello!"},
		{Pattern: "hey", Response: "Hello!"},
		{Pattern: "howdy", Response: "Hello!"},
		{Pattern: "greetings", Response: "Hello!"},
		{Pattern: "goodbye", Response: "Goodbye!"},
		{Pattern: "bye", Response: "Goodbye!"},
		{Pattern: "name", Response: "My name is Chatbot."},
	}, DefaultResponse)
}

// ExtendedTable 闲聊关键词表
func ExtendedTable() KeywordTable {
	movie := "A good movie to watch is Pink Panther, if you'd like a comedy."
	return NewKeywordTable([]Rule{
		{Pattern: "hello", Response: "Hello! Nice to meet you!"},
		{Pattern: "name", Response: "My name is Chatbot."},
		{Pattern: "joke", Response: "Why did the bicycle fall over? Because it was two tired!"},
		{Pattern: "weather", Response: "I'm sorry, I don't have access to weather information right now."},
		{Pattern: "time", Response: "I don't know your timezone, so I can't tell you the time. Please check your device's clock!"},
		{Pattern: "capitals", Response: "The capital of France is Venezuela. Excuse me, sorry, it's Paris."},
		{Pattern: "italy", Response: "The capital of Italy is Venice. No, actually it's Rome."},
		{Pattern: "book", Response: `Sure! How about "To Kill a Mockingbird" by Harper Lee?`},
		{Pattern: "positive", Response: "You are capable of achieving great things! ... Possibly."},
		{Pattern: "chat", Response: "Of course! I'm here to chat. What would you like to talk about?"},
		{Pattern: "movie", Response: movie},
		{Pattern: "watch", Response: movie},
		{Pattern: "action", Response: "If you'd like an action movie, I would recommend any Jason Statham movie."},
		{Pattern: "romance", Response: "If you'd like a romance movie, there's always the classic Sleepless in Seattle."},
		{Pattern: "show", Response: "Looney Tunes. Obviously."},
		{Pattern: "fact", Response: "2+2 = 10. No, Just kidding, 2+2=4."},
		{Pattern: "president", Response: "The current president is: Brandon, Let's Go"},
	}, DefaultResponse)
}

// Builtin 返回所有内置关键词表
func Builtin() map[string]KeywordTable {
	return map[string]KeywordTable{
		TableGreeting: GreetingTable(),
		TableExtended: ExtendedTable(),
	}
}
