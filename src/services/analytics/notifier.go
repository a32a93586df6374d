package analytics

import "log"

// FunnelNotifier receives state machine signals. Transition cues are
// rendered client-side; the server only keeps a trace of them.
type FunnelNotifier struct{}

func (FunnelNotifier) NotifyTransition(sessionID string) {
	log.Println("▶️ Funnel step advanced:", sessionID)
}

func (FunnelNotifier) NotifyCelebration(sessionID string) {
	log.Println("🎉 Funnel completed:", sessionID)
}
