package engine_test

import (
	"context"
	"errors"
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gaslab/internal/config"
	"github.com/san-kum/gaslab/internal/engine"
	"github.com/san-kum/gaslab/internal/gas"
	"github.com/san-kum/gaslab/internal/metrics"
)

var _ = Describe("World", func() {
	var cfg *config.Config

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Width = 200
		cfg.Height = 200
		cfg.Particles = 100
		cfg.Seed = 12345
	})

	Describe("New", func() {
		It("places the requested number of particles", func() {
			w, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(w.ParticleCount()).To(Equal(100))
		})

		It("places particles without mutual overlap", func() {
			w, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			discs := w.Discs()
			for i := range discs {
				for j := i + 1; j < len(discs); j++ {
					dist := math.Hypot(discs[j].X-discs[i].X, discs[j].Y-discs[i].Y)
					Expect(dist).To(BeNumerically(">=", discs[i].Radius+discs[j].Radius))
				}
			}
		})

		It("places every particle fully inside the domain", func() {
			w, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			for _, d := range w.Discs() {
				Expect(d.X).To(BeNumerically(">=", d.Radius))
				Expect(d.X).To(BeNumerically("<=", cfg.Width-d.Radius))
				Expect(d.Y).To(BeNumerically(">=", d.Radius))
				Expect(d.Y).To(BeNumerically("<=", cfg.Height-d.Radius))
			}
		})

		It("starts every particle at the RMS speed for the target temperature", func() {
			w, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			vrms := gas.RMSSpeed(cfg.TargetTemp, cfg.Mass)
			for _, v := range w.Speeds() {
				Expect(v).To(BeNumerically("~", vrms, vrms*1e-9))
			}
		})

		It("fails fast when the domain is too dense", func() {
			cfg.Width = 50
			cfg.Height = 50
			cfg.Particles = 2000

			_, err := engine.New(cfg)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, engine.ErrDomainTooDense)).To(BeTrue())
		})

		It("rejects invalid configuration", func() {
			cfg.Mass = 0
			_, err := engine.New(cfg)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Step", func() {
		It("keeps every particle inside the domain", func() {
			w, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 50; i++ {
				w.Step()
			}
			for _, d := range w.Discs() {
				Expect(d.X).To(BeNumerically(">=", d.Radius))
				Expect(d.X).To(BeNumerically("<=", cfg.Width-d.Radius))
				Expect(d.Y).To(BeNumerically(">=", d.Radius))
				Expect(d.Y).To(BeNumerically("<=", cfg.Height-d.Radius))
			}
		})

		It("conserves total kinetic energy across ticks", func() {
			w, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			ke := func() float64 {
				total := 0.0
				for _, v := range w.Speeds() {
					total += 0.5 * cfg.Mass * v * v
				}
				return total
			}

			before := ke()
			for i := 0; i < 200; i++ {
				w.Step()
			}
			Expect(ke()).To(BeNumerically("~", before, before*1e-6))
		})
	})

	Describe("readers", func() {
		It("hands out independent snapshots", func() {
			w, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			discs := w.Discs()
			discs[0].X = -1e9
			Expect(w.Discs()[0].X).NotTo(Equal(-1e9))

			speeds := w.Speeds()
			speeds[0] = -1
			Expect(w.Speeds()[0]).NotTo(Equal(-1.0))
		})

		It("exposes the latest interval report", func() {
			w, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			_, ok := w.LastReport()
			Expect(ok).To(BeFalse())

			for i := 0; i < cfg.SimulationRate; i++ {
				w.Step()
			}
			r, ok := w.LastReport()
			Expect(ok).To(BeTrue())
			Expect(r.Tick).To(Equal(cfg.SimulationRate))
		})
	})

	Describe("metrics", func() {
		It("reads back the target temperature from kinetic energy", func() {
			w, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			w.AddMetric(metrics.NewTemperature())

			var report *engine.Report
			for i := 0; i < cfg.SimulationRate; i++ {
				if r := w.Step(); r != nil {
					report = r
				}
			}
			Expect(report).NotTo(BeNil())
			Expect(report.Metrics["temperature"]).To(BeNumerically("~", cfg.TargetTemp, cfg.TargetTemp*0.01))
		})
	})

	Describe("Run", func() {
		It("stops when the context expires", func() {
			cfg.Particles = 10
			w, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			err = w.Run(ctx)
			Expect(errors.Is(err, context.DeadlineExceeded)).To(BeTrue())
		})
	})

	Describe("empty world", func() {
		It("ticks and reports zero pressure", func() {
			cfg.Particles = 0
			w, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			var report *engine.Report
			for i := 0; i < cfg.SimulationRate; i++ {
				report = w.Step()
			}
			Expect(report).NotTo(BeNil())
			Expect(report.Pressure).To(BeZero())
			Expect(report.IdealPressure).To(BeZero())
			Expect(report.PercentDiff).To(BeZero())
		})
	})
})
