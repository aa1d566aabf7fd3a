// stack.go - bounded LIFO of Input.
// SPDX-License-Identifier: GPL-3.0-or-later

package input

import "fmt"

// MaxDepth is the hard limit on how many [Input] sources may be open
// at once, preventing runaway recursion through self-referencing or
// deeply chained response files.
const MaxDepth = 10

// ErrStackDepthExceeded is returned by [*Stack.Push] once [MaxDepth]
// sources are already open.
type ErrStackDepthExceeded struct{}

func (ErrStackDepthExceeded) Error() string {
	return fmt.Sprintf("input stack depth exceeds the maximum of %d", MaxDepth)
}

// ErrRecursiveResponseFile is returned by [*Stack.Push] when name
// already names a response file present somewhere on the stack.
type ErrRecursiveResponseFile struct {
	Name string
}

func (e ErrRecursiveResponseFile) Error() string {
	return fmt.Sprintf("response file %q references itself", e.Name)
}

// ErrStdinAlreadyRead is returned when a second `@-` response file
// reference is attempted within the same parse.
type ErrStdinAlreadyRead struct{}

func (ErrStdinAlreadyRead) Error() string {
	return "standard input has already been read as a response file"
}

// ErrCommentUnbalancedOnPop is returned by [*Stack.Pop] when the
// source being popped still has an open `-{` level.
type ErrCommentUnbalancedOnPop struct {
	Name string
}

func (e ErrCommentUnbalancedOnPop) Error() string {
	return fmt.Sprintf("%s: unbalanced bracketed comment at end of input", e.Name)
}

// Stack is a bounded LIFO of [Input], carrying the stdin-read-once
// flag that prevents the response-file name "-" from being consumed
// twice.
type Stack struct {
	items     []Input
	stdinRead bool
}

// NewStack returns an empty [*Stack].
func NewStack() *Stack {
	return &Stack{}
}

// Depth returns how many sources are currently open.
func (s *Stack) Depth() int {
	return len(s.items)
}

// Empty reports whether the stack has no open sources.
func (s *Stack) Empty() bool {
	return len(s.items) == 0
}

// Top returns the innermost (most recently pushed) [Input], or nil if
// the stack is empty.
func (s *Stack) Top() Input {
	if s.Empty() {
		return nil
	}
	return s.items[len(s.items)-1]
}

// StdinRead reports whether `@-` has already been consumed.
func (s *Stack) StdinRead() bool {
	return s.stdinRead
}

// MarkStdinRead records that `@-` has now been consumed.
func (s *Stack) MarkStdinRead() {
	s.stdinRead = true
}

// Push opens a new source on top of the stack. For [*ResponseFileInput]
// it enforces the recursion guard (no two open response files may
// share a name) in addition to [MaxDepth].
func (s *Stack) Push(in Input) error {
	if len(s.items) >= MaxDepth {
		return ErrStackDepthExceeded{}
	}
	if rf, ok := in.(*ResponseFileInput); ok {
		for _, open := range s.items {
			if existing, ok := open.(*ResponseFileInput); ok && existing.Name() == rf.Name() {
				return ErrRecursiveResponseFile{Name: rf.Name()}
			}
		}
	}
	s.items = append(s.items, in)
	return nil
}

// Pop closes and removes the innermost source. It fails if that
// source still has an open bracketed-comment level.
func (s *Stack) Pop() (Input, error) {
	top := s.Top()
	if top == nil {
		return nil, nil
	}
	if top.CommentDepth() > 0 {
		return nil, ErrCommentUnbalancedOnPop{Name: top.Name()}
	}
	if rf, ok := top.(*ResponseFileInput); ok {
		_ = rf.Close()
	}
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

// Contains reports whether a response file named name is currently
// open anywhere on the stack.
func (s *Stack) Contains(name string) bool {
	for _, open := range s.items {
		if rf, ok := open.(*ResponseFileInput); ok && rf.Name() == name {
			return true
		}
	}
	return false
}
