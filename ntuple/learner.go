package ntuple

import "github.com/timliao0206/TCG/game"

// step is one decision point of an episode: the board before the chosen
// move and the immediate reward the move produced.
type step struct {
	state  game.Board
	reward game.Reward
}

// Learner owns one episode's trajectory and applies the backward TD(0) pass
// over it when the episode closes. It mutates the network's weight tables in
// place; a learner and its network belong to a single goroutine.
type Learner struct {
	net   *Network
	alpha float64
	traj  []step
}

// NewLearner returns a learner training net with learning rate alpha.
func NewLearner(net *Network, alpha float64) *Learner {
	return &Learner{net: net, alpha: alpha}
}

// OpenEpisode discards any recorded trajectory. It must be called before
// the first Record of an episode.
func (l *Learner) OpenEpisode() {
	l.traj = l.traj[:0]
}

// Record appends one decision point. The terminal decision point, where no
// move was available, is recorded with reward 0.
func (l *Learner) Record(state game.Board, reward game.Reward) {
	l.traj = append(l.traj, step{state: state, reward: reward})
}

// Len returns the number of recorded decision points.
func (l *Learner) Len() int {
	return len(l.traj)
}

// CloseEpisode drains the trajectory newest-first. The newest state gets a
// bootstrap target of 0 (the terminal state has no continuation); every
// earlier state's target is its own reward plus the just-updated estimate of
// its successor. At least one step must have been recorded.
func (l *Learner) CloseEpisode() {
	last := len(l.traj) - 1
	l.net.Update(0, &l.traj[last].state, l.alpha)

	next := l.traj[last].state
	for i := last - 1; i >= 0; i-- {
		cur := l.traj[i]
		target := float64(cur.reward) + l.net.Evaluate(&next)
		l.net.Update(target, &cur.state, l.alpha)
		next = cur.state
	}
	l.traj = l.traj[:0]
}
