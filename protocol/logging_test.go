package protocol_test

import (
	"context"
	"io"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/siclient/config"
	siclog "github.com/sabouaram/siclient/logger"
	logcfg "github.com/sabouaram/siclient/logger/config"
	"github.com/sabouaram/siclient/protocol"
)

// captureStderr redirects os.Stderr for the duration of fn and returns
// everything written to it. The stderr hook (logger/hookstderr) is the
// only sink Error-level entries reach once a logger.Logger is wired with
// SetOptions, so this is how a test observes that logError actually fired.
func captureStderr(fn func()) string {
	orig := os.Stderr
	r, w, err := os.Pipe()
	Expect(err).NotTo(HaveOccurred())
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = orig

	out, _ := io.ReadAll(r)
	return string(out)
}

var _ = Describe("a wired logger.Logger observes connect failures", func() {
	It("routes a failed dial through logError to the stderr hook", func() {
		log := siclog.New(context.Background())
		Expect(log.SetOptions(&logcfg.Options{
			Stdout: &logcfg.OptionsStd{DisableColor: true, DisableTimestamp: true},
		})).To(Succeed())

		o := config.Default()
		o.Host = "127.0.0.1"
		o.Port = 1
		o.Reconnect = false

		errored := make(chan struct{})
		obs := &recordingObserver{onError: func(error) {
			select {
			case <-errored:
			default:
				close(errored)
			}
		}}

		captured := captureStderr(func() {
			// The stderr hook binds os.Stderr when SetOptions builds it, so
			// the logger is wired inside the redirect.
			log := siclog.New(context.Background())
			Expect(log.SetOptions(&logcfg.Options{
				Stdout: &logcfg.OptionsStd{DisableColor: true, DisableTimestamp: true},
			})).To(Succeed())

			c, err := protocol.New(context.Background(), *o, func() siclog.Logger { return log })
			Expect(err).NotTo(HaveOccurred())
			c.SetObserver(obs)

			c.Connect()

			Eventually(errored, time.Second).Should(BeClosed())
		})

		Expect(captured).To(ContainSubstring("protocol core error"))
	})
})
