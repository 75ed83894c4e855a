package list

import "github.com/pkg/errors"

var (
	ErrAlreadyBorrowed        = errors.New("already borrowed")
	ErrAlreadyMutablyBorrowed = errors.New("already mutably borrowed")
)

// borrowFlag tracks live borrows of one node: >0 shared, -1 exclusive.
// It is not safe for concurrent use.
type borrowFlag int

const exclusive borrowFlag = -1

func (b *borrowFlag) acquire() {
	if *b == exclusive {
		panic(ErrAlreadyMutablyBorrowed)
	}
	*b++
}

func (b *borrowFlag) release() { *b-- }

func (b *borrowFlag) acquireMut() {
	if *b != 0 {
		panic(ErrAlreadyBorrowed)
	}
	*b = exclusive
}

func (b *borrowFlag) releaseMut() { *b = 0 }
