package game

// MessageLogSize is how many of the newest messages are kept.
const MessageLogSize = 5

// MessageLog is a bounded list of outcome lines, oldest first.
type MessageLog struct {
	lines []string
	size  int
}

// NewMessageLog creates a log keeping at most size lines.
func NewMessageLog(size int) *MessageLog {
	return &MessageLog{size: size}
}

// Add appends a line, dropping the oldest once full.
func (l *MessageLog) Add(line string) {
	if l.size <= 0 {
		return
	}
	if len(l.lines) == l.size {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:l.size-1]
	}
	l.lines = append(l.lines, line)
}

// Lines returns a copy of the kept lines.
func (l *MessageLog) Lines() []string {
	return append([]string(nil), l.lines...)
}

// Len returns the number of kept lines.
func (l *MessageLog) Len() int {
	return len(l.lines)
}
