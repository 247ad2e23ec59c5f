// Package speech defines the voice I/O ports. The actual speech engines run
// in the browser; the server only needs seams it can drive and test against.
package speech

import "log"

// Recognizer converts audio to text. Start begins a capture and reports a
// final transcript through onResult, completion through onEnd, and failures
// through onError. The returned function stops the capture early. A
// recognition failure must never take the session down; callers surface it as
// a transient user-visible notice and carry on in text mode.
type Recognizer interface {
	Start(onResult func(transcript string), onEnd func(), onError func(reason string)) (stop func())
}

// Synthesizer vocalizes assistant replies. Fire-and-forget: failures are
// logged and swallowed, never surfaced to the user.
type Synthesizer interface {
	Speak(text string)
}

// NoopSynthesizer discards speech output. Used when no voice channel is
// attached to a session.
type NoopSynthesizer struct{}

func (NoopSynthesizer) Speak(string) {}

// LogSynthesizer writes spoken text to the server log. Stands in for a real
// text-to-speech engine in development.
type LogSynthesizer struct{}

func (LogSynthesizer) Speak(text string) {
	log.Printf("🔊 speak: %s", text)
}

// UnsupportedRecognizer immediately reports that no speech input is
// available, mirroring a browser without the recognition API.
type UnsupportedRecognizer struct{}

func (UnsupportedRecognizer) Start(_ func(string), _ func(), onError func(string)) func() {
	if onError != nil {
		onError("Speech recognition not supported")
	}
	return func() {}
}
