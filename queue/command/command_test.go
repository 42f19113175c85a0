package command_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/siclient/queue/command"
)

func write(cost int64) command.Command {
	return command.Command{Kind: command.Write, EstimatedCost: cost}
}

var _ = Describe("Queue", func() {
	It("pops in FIFO order", func() {
		q := command.New()
		q.Push(command.Command{Kind: command.Connect})
		q.Push(write(10))

		first, ok := q.Pop()
		Expect(ok).To(BeTrue())
		Expect(first.Kind).To(Equal(command.Connect))
	})

	It("only counts Write commands toward size_bytes", func() {
		q := command.New()
		q.Push(command.Command{Kind: command.Connect})
		q.Push(write(50))
		q.Push(command.Command{Kind: command.Disconnect})

		Expect(q.SizeBytes()).To(Equal(int64(50)))
		Expect(q.Count()).To(Equal(int64(3)))
	})

	Context("Trim (Property 4)", func() {
		It("preserves the leading Connect and trailing Disconnect", func() {
			q := command.New()
			q.Push(command.Command{Kind: command.Connect})
			for i := 0; i < 5; i++ {
				q.Push(write(100))
			}
			q.Push(command.Command{Kind: command.Disconnect})

			freed := q.Trim(250)

			Expect(freed).To(BeTrue())

			first, ok := q.Pop()
			Expect(ok).To(BeTrue())
			Expect(first.Kind).To(Equal(command.Connect))

			var last command.Command
			for {
				c, ok := q.Pop()
				if !ok {
					break
				}
				last = c
			}
			Expect(last.Kind).To(Equal(command.Disconnect))
		})

		It("reports false when fewer than n bytes could be freed", func() {
			q := command.New()
			q.Push(write(10))

			Expect(q.Trim(1000)).To(BeFalse())
			Expect(q.Count()).To(Equal(int64(0)))
		})
	})

	Context("DrainDisconnectsOnly", func() {
		It("discards Writes and Connects, keeping only Disconnects in order", func() {
			q := command.New()
			q.Push(command.Command{Kind: command.Connect})
			q.Push(write(10))
			q.Push(command.Command{Kind: command.Disconnect})
			q.Push(write(10))
			q.Push(command.Command{Kind: command.Disconnect})

			out := q.DrainDisconnectsOnly()

			Expect(out).To(HaveLen(2))
			for _, c := range out {
				Expect(c.Kind).To(Equal(command.Disconnect))
			}
			Expect(q.Count()).To(Equal(int64(0)))
		})
	})

	Context("Clear", func() {
		It("empties the queue entirely", func() {
			q := command.New()
			q.Push(write(10))
			q.Clear()

			Expect(q.Count()).To(Equal(int64(0)))
			Expect(q.SizeBytes()).To(Equal(int64(0)))
		})
	})
})
