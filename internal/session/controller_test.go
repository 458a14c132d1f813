package session_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ruin/internal/ruin"
	"github.com/san-kum/ruin/internal/session"
)

// scriptedCoin replays outcomes in order, then keeps losing.
type scriptedCoin struct {
	outcomes []bool
	pos      int
}

func (c *scriptedCoin) Toss() bool {
	if c.pos >= len(c.outcomes) {
		return false
	}
	v := c.outcomes[c.pos]
	c.pos++
	return v
}

func flips(wins, losses int) []bool {
	out := make([]bool, 0, wins+losses)
	for i := 0; i < wins; i++ {
		out = append(out, true)
	}
	for i := 0; i < losses; i++ {
		out = append(out, false)
	}
	return out
}

var _ = Describe("Controller", func() {
	var (
		out  *bytes.Buffer
		coin *scriptedCoin
		ctrl *session.Controller
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		coin = &scriptedCoin{}
		ctrl = session.New(ruin.NewEngine(coin), session.Options{Out: out})
	})

	It("exposes the fixed command table", func() {
		Expect(ctrl.Commands()).To(Equal([]string{"help", "matrix", "run", "total"}))
	})

	Describe("run", func() {
		It("adds each run into the running total", func() {
			coin.outcomes = append(flips(6, 4), flips(3, 7)...)

			Expect(ctrl.Execute("run 10 1")).To(Succeed())
			Expect(ctrl.Total()).To(Equal(ruin.Tally{Wins: 6, Losses: 4}))

			Expect(ctrl.Execute("run 10 1")).To(Succeed())
			Expect(ctrl.Total()).To(Equal(ruin.Tally{Wins: 9, Losses: 11}))

			out.Reset()
			Expect(ctrl.Execute("total")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Total Wins = 9"))
			Expect(out.String()).To(ContainSubstring("Total Losses = 11"))
			Expect(out.String()).To(ContainSubstring("Total Percentage Wins = 45%"))
			Expect(out.String()).To(ContainSubstring("Total Percentage Edge = -5%"))
		})

		It("prints the run summary", func() {
			coin.outcomes = flips(6, 4)

			Expect(ctrl.Execute("run 10 1")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Wins = 6"))
			Expect(out.String()).To(ContainSubstring("Losses = 4"))
			Expect(out.String()).To(ContainSubstring("Percentage Wins = 60%"))
			Expect(out.String()).To(ContainSubstring("Percentage Edge = 10%"))
		})

		It("reuses the last games and sets when called bare", func() {
			Expect(ctrl.Execute("run 5 2")).To(Succeed())
			Expect(ctrl.Execute("run")).To(Succeed())

			games, sets, ok := ctrl.LastParams()
			Expect(ok).To(BeTrue())
			Expect(games).To(Equal(5))
			Expect(sets).To(Equal(2))
			Expect(ctrl.Total().Total()).To(Equal(20))
		})

		It("seeds the last parameters from options", func() {
			ctrl = session.New(ruin.NewEngine(coin), session.Options{Out: out, Games: 3, Sets: 3})

			Expect(ctrl.Execute("run")).To(Succeed())
			Expect(ctrl.Total().Total()).To(Equal(9))
		})

		It("reports a usage error when no parameters are known", func() {
			err := ctrl.Execute("run")
			Expect(err).To(MatchError(session.ErrUsage))
			Expect(ctrl.Total()).To(Equal(ruin.Tally{}))
			Expect(out.String()).To(BeEmpty())
		})

		DescribeTable("rejects a wrong argument count",
			func(line string) {
				Expect(ctrl.Execute(line)).To(MatchError(session.ErrUsage))
				Expect(ctrl.Total()).To(Equal(ruin.Tally{}))
			},
			Entry("one argument", "run 10"),
			Entry("three arguments", "run 10 1 1"),
		)

		DescribeTable("rejects invalid parameters without remembering them",
			func(line string) {
				err := ctrl.Execute(line)
				Expect(err).To(MatchError(ruin.ErrInvalidParameters))
				_, _, ok := ctrl.LastParams()
				Expect(ok).To(BeFalse())
				Expect(ctrl.Total()).To(Equal(ruin.Tally{}))
				Expect(out.String()).To(BeEmpty())
			},
			Entry("non-numeric games", "run ten 1"),
			Entry("non-numeric sets", "run 10 x"),
			Entry("zero games", "run 0 5"),
			Entry("zero sets", "run 5 0"),
			Entry("negative", "run -3 2"),
			Entry("product overflows int", "run 4611686018427387904 2"),
			Entry("too many flips", "run 4294967296 4294967296"),
			Entry("out of int range", "run 99999999999999999999 1"),
		)

		It("rejects oversized runs with the matrix on", func() {
			Expect(ctrl.Execute("matrix")).To(Succeed())
			Expect(ctrl.Execute("run 4611686018427387904 2")).To(MatchError(ruin.ErrInvalidParameters))
			Expect(ctrl.Total()).To(Equal(ruin.Tally{}))
		})
	})

	Describe("matrix", func() {
		It("toggles and restores the display flag", func() {
			Expect(ctrl.ShowMatrix()).To(BeFalse())
			Expect(ctrl.Execute("matrix")).To(Succeed())
			Expect(ctrl.ShowMatrix()).To(BeTrue())
			Expect(ctrl.Execute("matrix")).To(Succeed())
			Expect(ctrl.ShowMatrix()).To(BeFalse())
		})

		It("makes run print the grid", func() {
			coin.outcomes = []bool{true, false, true, false}
			Expect(ctrl.Execute("matrix")).To(Succeed())
			Expect(ctrl.Execute("run 2 2")).To(Succeed())
			Expect(out.String()).To(HavePrefix("\n1 0\n1 0\n\n"))
		})
	})

	Describe("total", func() {
		It("reports no data before any run", func() {
			Expect(ctrl.Execute("total")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("no data yet"))
			Expect(out.String()).NotTo(ContainSubstring("NaN"))
		})
	})

	Describe("help", func() {
		It("lists every command without touching state", func() {
			Expect(ctrl.Execute("help")).To(Succeed())
			for _, name := range ctrl.Commands() {
				Expect(out.String()).To(ContainSubstring(name))
			}
			Expect(ctrl.ShowMatrix()).To(BeFalse())
			Expect(ctrl.Total()).To(Equal(ruin.Tally{}))
		})
	})

	Describe("unknown commands", func() {
		It("returns ErrUnknownCommand and leaves state alone", func() {
			coin.outcomes = flips(1, 1)
			Expect(ctrl.Execute("run 2 1")).To(Succeed())
			before := ctrl.Total()

			err := ctrl.Execute("foobar baz")
			Expect(err).To(MatchError(session.ErrUnknownCommand))
			Expect(err.Error()).To(HaveSuffix("foobar"))
			Expect(ctrl.Total()).To(Equal(before))
			Expect(ctrl.ShowMatrix()).To(BeFalse())
		})
	})

	It("ignores blank lines", func() {
		Expect(ctrl.Execute("")).To(Succeed())
		Expect(ctrl.Execute("   \t ")).To(Succeed())
		Expect(strings.TrimSpace(out.String())).To(BeEmpty())
	})
})
