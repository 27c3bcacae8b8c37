package errkit

import "testing"

func TestRunReturnsZeroOnSuccess(t *testing.T) {
	if code := Run(func() error { return nil }); code != 0 {
		t.Fatalf("Run() = %d, want 0", code)
	}
}

func TestRunReturnsOneOnReturnedError(t *testing.T) {
	code := Run(func() error {
		return Block(
			func() error {
				Throw(ConfigError, "bad config")
				return nil
			},
			Catch(ConfigError, func(e *ThrownError) error { return e }),
		)
	})
	if code != 1 {
		t.Fatalf("Run() = %d, want 1", code)
	}
}

func TestRunReturnsOneOnUncaughtPanic(t *testing.T) {
	code := Run(func() error {
		Throw(AssertError, "unreachable state")
		return nil
	})
	if code != 1 {
		t.Fatalf("Run() = %d, want 1", code)
	}
}
