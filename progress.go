//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package dnacipher

// Progressor displays the completion of cipher rounds
type Progressor interface {
	Show(percent float32)
	Stop()
}

type nilProgress struct{}

func (np nilProgress) Show(float32) {}
func (np nilProgress) Stop()        {}

// roundProgress reports completed rounds of one Encrypt or Decrypt call
type roundProgress struct {
	Progressor
	total int
	done  int
}

func newRoundProgress(prog Progressor, total int) (rp *roundProgress) {
	if prog == nil {
		prog = nilProgress{}
	}

	rp = &roundProgress{
		Progressor: prog,
		total:      total,
	}

	if total > 0 {
		rp.Show(0)
	}

	return
}

// Indicate marks one more round complete
func (rp *roundProgress) Indicate() {
	rp.done++
	if rp.done < rp.total {
		rp.Show(float32(rp.done) * 100.0 / float32(rp.total))
	}
}

// Close shows completion and stops the display
func (rp *roundProgress) Close() {
	rp.Show(100.0)
	rp.Stop()
}
