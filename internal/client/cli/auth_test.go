package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"
)

// stubPrompts replaces the input seams with canned answers. Each call to
// getSimpleText pops the next answer.
func stubPrompts(t *testing.T, answers []string, password []byte, multiline string) {
	t.Helper()
	origST, origGP, origGM := getSimpleText, getPassword, getMultiline
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
		getMultiline = origGM
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return multiline, nil }
}

type fakeAuth struct {
	regHandle  string
	regPass    []byte
	regAddress string
	regErr     error

	loginHandle string
	loginPass   []byte
	loginErr    error

	restoreHandle string
	restoreErr    error

	logoutCalled bool
	logoutErr    error

	pingErr error
}

func (f *fakeAuth) Register(_ context.Context, handle string, pass []byte, address string) error {
	f.regHandle, f.regPass, f.regAddress = handle, append([]byte(nil), pass...), address
	return f.regErr
}
func (f *fakeAuth) Login(_ context.Context, handle string, pass []byte) error {
	f.loginHandle, f.loginPass = handle, append([]byte(nil), pass...)
	return f.loginErr
}
func (f *fakeAuth) RestoreSession(context.Context) (string, error) {
	return f.restoreHandle, f.restoreErr
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) Ping(ctx context.Context) error  { return f.pingErr }
func (f *fakeAuth) Close(ctx context.Context) error { return nil }

func TestRegister_Success(t *testing.T) {
	f := &fakeAuth{}
	a := &App{authService: f}

	stubPrompts(t, []string{"alice", "alice@pay.example"}, []byte("secret"), "")

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regHandle != "alice" {
		t.Fatalf("Register handle mismatch: %q", f.regHandle)
	}
	if string(f.regPass) != "secret" {
		t.Fatalf("Register pass mismatch: %q", string(f.regPass))
	}
	if f.regAddress != "alice@pay.example" {
		t.Fatalf("Register address mismatch: %q", f.regAddress)
	}
}

func TestRegister_ServiceError(t *testing.T) {
	wantErr := errors.New("taken")
	f := &fakeAuth{regErr: wantErr}
	a := &App{authService: f}

	stubPrompts(t, []string{"alice", "addr"}, []byte("secret"), "")

	if err := a.Register(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("want %v, got %v", wantErr, err)
	}
}

func TestLogin_Success(t *testing.T) {
	f := &fakeAuth{}
	a := &App{authService: f}

	stubPrompts(t, []string{"alice"}, []byte("secret"), "")

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginHandle != "alice" {
		t.Fatalf("Login handle mismatch: %q", f.loginHandle)
	}
	if a.userName != "alice" {
		t.Fatalf("userName not set: %q", a.userName)
	}
	if a.Mode != ModeOnline {
		t.Fatalf("mode not online: %q", a.Mode)
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected logged in")
	}
}

func TestLogin_Failure(t *testing.T) {
	wantErr := errors.New("bad credentials")
	f := &fakeAuth{loginErr: wantErr}
	a := &App{authService: f}

	stubPrompts(t, []string{"alice"}, []byte("wrong"), "")

	if err := a.Login(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("want %v, got %v", wantErr, err)
	}
	if a.isLoggedIn() {
		t.Fatalf("should not be logged in")
	}
}

func TestRestoreSession(t *testing.T) {
	f := &fakeAuth{restoreHandle: "alice"}
	a := &App{authService: f}

	if err := a.restoreSession(context.Background()); err != nil {
		t.Fatalf("restoreSession err: %v", err)
	}
	if a.userName != "alice" {
		t.Fatalf("userName not restored: %q", a.userName)
	}
}

func TestLogout(t *testing.T) {
	f := &fakeAuth{}
	a := &App{authService: f, userName: "alice"}
	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatalf("Logout not propagated")
	}
	if a.userName != "" {
		t.Fatalf("userName not cleared")
	}
}
