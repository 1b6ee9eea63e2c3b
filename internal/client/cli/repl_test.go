package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn  bool
	dashboard bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool  { return f.loggedIn }
func (f *fakeExec) inDashboard() bool { return f.dashboard }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Search(ctx context.Context) error {
	f.calls = append(f.calls, "search")
	return nil
}
func (f *fakeExec) ClearSearch() { f.calls = append(f.calls, "clear") }
func (f *fakeExec) Show(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "show")
	f.args = append(f.args, arg)
	return nil
}
func (f *fakeExec) Favorite(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "fav")
	f.args = append(f.args, arg)
	return nil
}
func (f *fakeExec) Dashboard(ctx context.Context) error {
	f.calls = append(f.calls, "dashboard")
	f.dashboard = true
	return nil
}
func (f *fakeExec) Unfavorite(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "unfav")
	f.args = append(f.args, arg)
	return nil
}
func (f *fakeExec) Back() { f.calls = append(f.calls, "back"); f.dashboard = false }

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_DispatchOrder(t *testing.T) {
	muteOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"search",
		"show 2",
		"fav 2",
		"dashboard",
		"unfav 1",
		"back",
		"logout",
		"bogus",
		"exit",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader(input)))

	want := []string{"login", "search", "show", "fav", "dashboard", "unfav", "back", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i, c := range want {
		if exec.calls[i] != c {
			t.Fatalf("call %d = %q, want %q (all: %v)", i, exec.calls[i], c, exec.calls)
		}
	}
	if len(exec.args) != 3 || exec.args[0] != "2" || exec.args[1] != "2" || exec.args[2] != "1" {
		t.Fatalf("args = %v", exec.args)
	}
}

func TestRunREPL_ArgCommandsNeedArgs(t *testing.T) {
	muteOutput(t)

	input := "show\nfav\nunfav\nquit\n"
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader(input)))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_ShortAliases(t *testing.T) {
	muteOutput(t)

	input := "s\nd\nexit\n"
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader(input)))

	if len(exec.calls) != 2 || exec.calls[0] != "search" || exec.calls[1] != "dashboard" {
		t.Fatalf("calls = %v", exec.calls)
	}
}
