package engine

// Prompt is a question the player has to answer before play continues.
type Prompt int

const (
	PromptNone            Prompt = iota
	PromptAdvance                // board cleared: go to the next level?
	PromptMovesExhausted         // move budget spent: back to level 1
	PromptCampaignCleared        // cleared the highest level the palette allows
)

// String returns a stable name for the prompt.
func (p Prompt) String() string {
	switch p {
	case PromptNone:
		return "none"
	case PromptAdvance:
		return "advance"
	case PromptMovesExhausted:
		return "moves_exhausted"
	case PromptCampaignCleared:
		return "campaign_cleared"
	default:
		return "unknown"
	}
}

// AchievementRecorder persists the level reached when a board is cleared.
type AchievementRecorder interface {
	Save(level int) []int
}

// Controller drives level progression around a Session: it deals boards,
// records achievements on completion and resolves prompts.
type Controller struct {
	session  *Session
	dealer   *Dealer
	recorder AchievementRecorder
	prompt   Prompt
}

// NewController creates a controller. The recorder may be nil.
func NewController(dealer *Dealer, recorder AchievementRecorder) *Controller {
	return &Controller{
		session:  NewSession(),
		dealer:   dealer,
		recorder: recorder,
	}
}

// SetRecorder replaces the achievement recorder.
func (c *Controller) SetRecorder(r AchievementRecorder) {
	c.recorder = r
}

// Session exposes the underlying session for read access.
func (c *Controller) Session() *Session {
	return c.session
}

// Prompt returns the pending prompt.
func (c *Controller) Prompt() Prompt {
	return c.prompt
}

// MaxLevel returns the highest playable level.
func (c *Controller) MaxLevel() int {
	return c.dealer.MaxLevel()
}

// Start deals a fresh board for level and clears any pending prompt.
func (c *Controller) Start(level int) error {
	board, maxMoves, err := c.dealer.Deal(level)
	if err != nil {
		return err
	}
	c.session.Install(level, board, maxMoves)
	c.prompt = PromptNone
	return nil
}

// Tap forwards a tap to the session and raises the matching prompt when
// the pair resolved the board. A cleared board is recorded before the
// advance prompt is shown.
func (c *Controller) Tap(index int) TapResult {
	if c.prompt != PromptNone {
		return TapResult{Outcome: TapIgnored, Status: c.session.Status()}
	}

	res := c.session.Tap(index)
	switch res.Status {
	case StatusLevelComplete:
		if c.recorder != nil {
			c.recorder.Save(c.session.Level())
		}
		c.prompt = PromptAdvance
	case StatusMovesExhausted:
		c.prompt = PromptMovesExhausted
	}
	return res
}

// Hide turns a mismatched pair back down; stale tickets are ignored.
func (c *Controller) Hide(t HideTicket) bool {
	return c.session.Hide(t)
}

// Advance answers the advance prompt affirmatively. Past the highest
// level the palette supports, the campaign is cleared instead.
func (c *Controller) Advance() error {
	if c.prompt != PromptAdvance {
		return nil
	}
	next := c.session.Level() + 1
	if next > c.dealer.MaxLevel() {
		c.prompt = PromptCampaignCleared
		return nil
	}
	return c.Start(next)
}

// Decline answers the advance prompt negatively: the level is replayed
// on a freshly dealt board.
func (c *Controller) Decline() error {
	if c.prompt != PromptAdvance {
		return nil
	}
	return c.Start(c.session.Level())
}

// Acknowledge dismisses the move-limit or campaign-cleared prompt and
// starts over at level 1.
func (c *Controller) Acknowledge() error {
	if c.prompt != PromptMovesExhausted && c.prompt != PromptCampaignCleared {
		return nil
	}
	return c.Start(1)
}

// Restart starts over at level 1 from any state.
func (c *Controller) Restart() error {
	return c.Start(1)
}
