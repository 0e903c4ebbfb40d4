package gallery

// Token identifies one copy action. Only the token of the latest copy can
// clear the flag, so copying again re-arms the feedback timer.
type Token uint64

// Tracker remembers which example was copied last.
type Tracker struct {
	index  int
	active bool
	latest Token
}

// Copy marks index as copied and returns the token its expiry must present.
// Copying the same index again is harmless and simply restarts the countdown.
func (t *Tracker) Copy(index int) Token {
	t.latest++
	t.index = index
	t.active = true
	return t.latest
}

// Expire clears the flag if token belongs to the most recent copy.
func (t *Tracker) Expire(token Token) bool {
	if !t.active || token != t.latest {
		return false
	}
	t.active = false
	return true
}

// Copied returns the index currently showing feedback, if any.
func (t *Tracker) Copied() (int, bool) {
	if !t.active {
		return -1, false
	}
	return t.index, true
}

// IsCopied reports whether index is the card currently showing feedback.
func (t *Tracker) IsCopied(index int) bool {
	return t.active && t.index == index
}

// Latest returns the token handed out by the most recent Copy.
func (t *Tracker) Latest() Token {
	return t.latest
}
