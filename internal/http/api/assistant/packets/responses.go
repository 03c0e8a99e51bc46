package packets

// returned for all single-shot assistant replies
type ReplyResponse struct {
	Reply string `json:"reply"`
}

// one server-sent event frame of a streamed reply
type StreamChunk struct {
	Text string `json:"text"`
}

// returned for the name reflection endpoint
type ReflectionResponse struct {
	ID         int    `json:"id"`
	Arabic     string `json:"arabic"`
	Reflection string `json:"reflection"`
}
