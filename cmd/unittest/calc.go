package main

import (
	"errors"

	"unittest"
)

// ErrDivideByZero is raised by divide for a zero divisor
var ErrDivideByZero = errors.New("divide by zero")

func divide(a, b int) int {
	if b == 0 {
		panic(ErrDivideByZero)
	}
	return a / b
}

// calls counts divide calls made by the tests; the setup hook resets it.
var calls int

func init() {
	unittest.OnSetup(func(*unittest.T) { calls = 0 })
	unittest.OnTeardown(func(t *unittest.T) {
		if calls > 10 {
			panic("test " + t.Name() + " divided too often")
		}
	})

	unittest.Define("divide by zero", func(t *unittest.T) {
		unittest.ExpectPanicsAs[error](t, func() {
			calls++
			divide(10, 0)
		})
	})

	unittest.Define("100 / 4 == 25", func(t *unittest.T) {
		t.NotPanics(func() {
			calls++
			t.Equal(divide(100, 4), 25)
		})
	})

	unittest.Define("integer division truncates", func(t *unittest.T) {
		calls++
		t.Equal(divide(7, 2), 3)
		t.Different(divide(7, 2), 3.5)
	})

	unittest.Define("checkpoint on the zero path", func(t *unittest.T) {
		t.EnsureReached("zero", func() {
			defer func() {
				if recover() != nil {
					t.Checkpoint("zero")
				}
			}()
			calls++
			divide(1, 0)
		})
	})

	unittest.Define("modulo", func(t *unittest.T) {
		t.NotImplemented()
	})
}
