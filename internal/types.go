package internal

// TranscriptionRequest is a raw speech-to-text result together with the
// language the polished message should be written in. Both values are
// passed through as given, including when empty.
type TranscriptionRequest struct {
	Transcription string `form:"transcription" json:"transcription"`
	Language      string `form:"language" json:"language"`
}

// PolishedMessage is the content of the <polished-text> section of the model reply.
type PolishedMessage struct {
	Message string `json:"message"`
}
