package nav_test

import (
	"fmt"

	"github.com/matzehuels/navstack/pkg/nav"
)

func ExampleController() {
	// The root payload shows while nothing is pushed.
	ctrl := nav.New("home", nav.Options{})

	lib := ctrl.PushWithID("library", "library shelf")
	ctrl.PushWithID("book-42", "a book")
	ctrl.PushWithID("chapter-3", "a chapter")
	fmt.Println(ctrl.Depth(), ctrl.Current(), ctrl.Direction())

	// Back to the library in one step, not two pops.
	ctrl.PopTo(lib.ID)
	fmt.Println(ctrl.Depth(), ctrl.Current(), ctrl.Direction())

	ctrl.PopToRoot()
	fmt.Println(ctrl.Depth(), ctrl.Current(), ctrl.Direction())

	// Output:
	// 3 a chapter forward
	// 1 library shelf backward
	// 0 home backward
}

func ExampleController_subscribe() {
	ctrl := nav.New("home", nav.Options{})

	cancel := ctrl.Subscribe(func(s nav.Snapshot[string]) {
		fmt.Printf("%s depth=%d top=%q\n", s.Direction, s.Depth, s.Top.ID)
	})
	defer cancel()

	ctrl.PushWithID("settings", "settings screen")
	ctrl.Pop()

	// Output:
	// forward depth=1 top="settings"
	// backward depth=0 top=""
}

func ExampleStack_popTo() {
	var s nav.Stack[string]
	_ = s.Push(nav.Record[string]{ID: "a", Payload: "first"})
	_ = s.Push(nav.Record[string]{ID: "b", Payload: "second"})
	_ = s.Push(nav.Record[string]{ID: "c", Payload: "third"})

	// A duplicate ID is rejected and changes nothing.
	err := s.Push(nav.Record[string]{ID: "a", Payload: "again"})
	fmt.Println(err, s.Len())

	popped, _ := s.PopTo("a")
	for _, rec := range popped {
		fmt.Println("popped", rec.ID)
	}
	fmt.Println("depth", s.Len())

	// Output:
	// duplicate record ID 3
	// popped c
	// popped b
	// depth 1
}
