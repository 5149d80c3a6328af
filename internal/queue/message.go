package queue

import "encoding/json"

// Message is the review-completion event sent to downstream queue consumers
// (for example a PDF re-render worker).
type Message struct {
	SessionID   string `json:"sessionId"`
	CVID        string `json:"cvId"`
	UserID      string `json:"userId"`
	Accepted    int    `json:"accepted"`
	CompletedAt string `json:"completedAt"`
	Version     int    `json:"version"`
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeMessage parses a JSON payload into a Message.
func DecodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}
