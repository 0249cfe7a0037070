package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RoomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tictactoe_rooms_created_total",
		Help: "Rooms successfully created.",
	})

	RoomsJoined = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tictactoe_rooms_joined_total",
		Help: "Guests successfully joined a room.",
	})

	ShotsCommitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tictactoe_shots_committed_total",
		Help: "Multiplayer shots committed, by outcome.",
	}, []string{"outcome"}) // placed or missed

	ShotsAborted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tictactoe_shots_aborted_total",
		Help: "Shot transactions aborted on stale turn or finished game.",
	})

	Resets = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tictactoe_resets_total",
		Help: "Multiplayer game resets written.",
	})
)
