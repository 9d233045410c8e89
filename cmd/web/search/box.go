package search

import (
	"context"
	"sync"
)

// State 는 헤더 검색창 드롭다운의 상태다.
type State int

const (
	Idle State = iota
	Querying
	ResultsShown
	NoResults
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Querying:
		return "querying"
	case ResultsShown:
		return "results_shown"
	case NoResults:
		return "no_results"
	default:
		return "unknown"
	}
}

// PointerSource 는 검색 영역 바깥 클릭을 감지하는 전역 입력 리스너 등록 지점이다.
// fn 의 inside 는 포인터가 검색 영역 안에서 눌렸는지 여부다.
type PointerSource interface {
	Subscribe(fn func(inside bool)) (unsubscribe func())
}

// Box 는 검색창 상태 머신이다.
//
//	Idle         --Type(non-empty)-->            Querying
//	Querying     --Resolve(n>0)-->               ResultsShown
//	Querying     --Resolve(n==0)-->              NoResults
//	any          --Clear / outside pointer / focus out--> Idle
//
// Idle 이 아닌 상태에 들어갈 때 PointerSource 에 리스너를 등록하고,
// 어떤 경로로든 Idle 로 돌아오면 정확히 한 번 해제한다.
// 하나의 이벤트씩 순서대로 호출된다고 가정하며 동시 호출에 안전하지 않다.
type Box struct {
	pointers    PointerSource
	unsubscribe func()

	state   State
	query   string
	results []Candidate
}

// NewBox 는 Idle 상태의 Box 를 만든다. pointers 가 nil 이면 바깥 클릭 구독을 하지 않는다.
func NewBox(pointers PointerSource) *Box {
	return &Box{pointers: pointers}
}

func (b *Box) State() State { return b.state }
func (b *Box) Query() string { return b.query }
func (b *Box) Results() []Candidate { return b.results }
func (b *Box) DropdownVisible() bool { return b.state == ResultsShown || b.state == NoResults }
func (b *Box) Subscribed() bool { return b.unsubscribe != nil }

// Type 은 키 입력으로 검색어가 바뀐 경우다. 빈 검색어는 Clear 와 같다.
func (b *Box) Type(query string) {
	if query == "" {
		b.Clear()
		return
	}
	b.query = query
	b.results = nil
	b.enter(Querying)
}

// Resolve 는 Querying 상태에서 매칭 결과를 반영한다. 다른 상태에서는 무시한다.
func (b *Box) Resolve(results []Candidate) {
	if b.state != Querying {
		return
	}
	b.results = results
	if len(results) > 0 {
		b.enter(ResultsShown)
		return
	}
	b.enter(NoResults)
}

// Clear 는 검색어를 지우고 Idle 로 돌아간다.
func (b *Box) Clear() {
	b.query = ""
	b.toIdle()
}

// PointerDown 은 포인터 입력 이벤트다. 검색 영역 바깥이면 Idle 로 돌아가며 검색어는 유지한다.
func (b *Box) PointerDown(inside bool) {
	if inside {
		return
	}
	b.toIdle()
}

// FocusOut 은 포커스가 빠져나간 경우다. 새 포커스가 검색 영역 바깥일 때만 Idle 로 돌아간다.
func (b *Box) FocusOut(inside bool) {
	if inside {
		return
	}
	b.toIdle()
}

// Select 는 드롭다운 항목을 고른 경우다. 검색어를 항목 이름으로 채우고 Idle 로 돌아간다.
func (b *Box) Select(c Candidate) {
	b.query = c.Name
	b.toIdle()
}

// Run 은 Type → Strategy.Search → Resolve 를 한 번에 수행한다.
// 검색이 실패하면 Idle 로 돌아가고 에러를 그대로 반환한다.
func (b *Box) Run(ctx context.Context, s Strategy, query string) error {
	b.Type(query)
	if b.state != Querying {
		return nil
	}
	results, err := s.Search(ctx, query)
	if err != nil {
		b.toIdle()
		return err
	}
	b.Resolve(results)
	return nil
}

func (b *Box) enter(next State) {
	if b.state == Idle && next != Idle && b.pointers != nil && b.unsubscribe == nil {
		b.unsubscribe = b.pointers.Subscribe(b.PointerDown)
	}
	b.state = next
}

func (b *Box) toIdle() {
	b.state = Idle
	b.results = nil
	if b.unsubscribe != nil {
		unsubscribe := b.unsubscribe
		b.unsubscribe = nil
		unsubscribe()
	}
}

// Listeners 는 PointerSource 의 기본 구현이다. 등록된 리스너 전체에 포인터 이벤트를 전달한다.
// 전달 도중 리스너가 해제되어도 안전하다.
type Listeners struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func(inside bool)
}

func NewListeners() *Listeners {
	return &Listeners{fns: make(map[int]func(inside bool))}
}

func (l *Listeners) Subscribe(fn func(inside bool)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

// Len 은 현재 등록된 리스너 수다.
func (l *Listeners) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}

// Dispatch 는 포인터 이벤트를 등록된 리스너에게 전달한다.
func (l *Listeners) Dispatch(inside bool) {
	l.mu.Lock()
	fns := make([]func(bool), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(inside)
	}
}
