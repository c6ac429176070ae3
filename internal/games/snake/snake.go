package snake

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// step returns the neighbouring cell in direction d.
func (p Point) step(d Direction) Point {
	switch d {
	case DirUp:
		return Point{X: p.X, Y: p.Y - 1}
	case DirDown:
		return Point{X: p.X, Y: p.Y + 1}
	case DirLeft:
		return Point{X: p.X - 1, Y: p.Y}
	default:
		return Point{X: p.X + 1, Y: p.Y}
	}
}

// initialLength is the body length of a freshly spawned snake.
const initialLength = 3

// Snake is the ordered body of occupied cells plus the current heading.
// It knows nothing about food; the Game decides when to grow or shrink it.
type Snake struct {
	body      []Point // Head at index 0
	direction Direction
	growing   bool // If true, don't remove tail on next move
}

// NewSnake creates a three-cell snake extending right from (x, y), heading right.
// The head is the rightmost cell.
func NewSnake(x, y int) *Snake {
	body := make([]Point, 0, initialLength)
	for i := initialLength - 1; i >= 0; i-- {
		body = append(body, Point{X: x + i, Y: y})
	}
	return &Snake{
		body:      body,
		direction: DirRight,
	}
}

// HeadDirection returns the current heading.
func (s *Snake) HeadDirection() Direction {
	return s.direction
}

// HeadPosition returns the head cell. An empty body reports (0, 0).
func (s *Snake) HeadPosition() (int, int) {
	if len(s.body) == 0 {
		return 0, 0
	}
	return s.body[0].X, s.body[0].Y
}

// resolve picks the heading a move would use: the requested one unless it is
// nil or a reversal.
func (s *Snake) resolve(dir *Direction) Direction {
	if dir == nil || *dir == s.direction.Opposite() {
		return s.direction
	}
	return *dir
}

// NextHead returns where the head would be after one move. A nil dir means
// keep going straight. It does not change the snake.
func (s *Snake) NextHead(dir *Direction) (int, int) {
	if len(s.body) == 0 {
		return 0, 0
	}
	next := s.body[0].step(s.resolve(dir))
	return next.X, next.Y
}

// MoveForward advances the snake by one cell. The tail is dropped unless a
// growth was buffered by RestoreTail, in which case the buffer is consumed.
func (s *Snake) MoveForward(dir *Direction) {
	if len(s.body) == 0 {
		return
	}
	s.direction = s.resolve(dir)

	head := s.body[0].step(s.direction)
	s.body = append([]Point{head}, s.body...)

	if s.growing {
		s.growing = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// RestoreTail makes the next MoveForward keep its tail, growing the snake by one.
func (s *Snake) RestoreTail() {
	s.growing = true
}

// RemoveTail drops the last body cell right away.
func (s *Snake) RemoveTail() {
	if len(s.body) == 0 {
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// OverlapTail reports whether (x, y) is any cell of the body, head included.
func (s *Snake) OverlapTail(x, y int) bool {
	p := Point{X: x, Y: y}
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// BodyLength returns the number of occupied cells.
func (s *Snake) BodyLength() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}
