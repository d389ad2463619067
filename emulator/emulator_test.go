// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bytes"
	"log"
	"strings"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/fisc/asm"
	"github.com/ezrec/fisc/isa"
	"github.com/ezrec/fisc/object"
	"github.com/ezrec/fisc/sim"
)

const loopObject = "v2.0 raw\n90\n44\n81\n15\n91\n43\n4\nc5\n7f\nc9\n"

const branchSource = `start:	not r1 r0
	add r2 r1 r1	; r2 = 0xfe
	bnz end
	not r3
end:	and r0 r1 r2
`

var _ = Describe("Emulator", func() {
	var (
		mockCtrl    *gomock.Controller
		mockMonitor *MockTracer
		emu         *Emulator
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockMonitor = NewMockTracer(mockCtrl)

		emu = NewEmulator()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should start with the default budget", func() {
		Expect(emu.Budget).To(Equal(CYCLE_BUDGET))
		Expect(emu.Halt).To(Equal(sim.HALT_NONE))
		Expect(emu.Verbose).To(BeFalse())
	})

	It("should run an object file to the cycle limit", func() {
		Expect(emu.Load(strings.NewReader(loopObject))).To(Succeed())

		result, err := emu.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Halt).To(Equal(sim.HALT_CYCLES))
		Expect(result.State.Cycles).To(Equal(CYCLE_BUDGET))
		Expect(result.State.PC).To(Equal(5))
		Expect(result.State.Register).To(Equal([4]uint8{5, 1, 0, 4}))
	})

	It("should reject a malformed object file", func() {
		err := emu.Load(strings.NewReader("v2.0 raw\n90\nzz\n"))
		Expect(err).To(MatchError(object.ErrObjectByte{LineNo: 3, Text: "zz"}))
	})

	It("should reset when loading", func() {
		Expect(emu.Load(strings.NewReader(loopObject))).To(Succeed())
		_, err := emu.Run()
		Expect(err).NotTo(HaveOccurred())

		Expect(emu.Load(strings.NewReader(loopObject))).To(Succeed())
		Expect(emu.Halt).To(Equal(sim.HALT_NONE))
		Expect(emu.State).To(Equal(sim.State{}))
	})

	It("should pass every cycle to the monitor", func() {
		Expect(emu.Load(strings.NewReader(loopObject))).To(Succeed())
		emu.Monitor = mockMonitor

		mockMonitor.EXPECT().Trace(gomock.Any()).Times(CYCLE_BUDGET - 1)
		mockMonitor.EXPECT().
			Trace(gomock.Any()).
			Do(func(step sim.Step) {
				Expect(step.Ip).To(Equal(7))
				Expect(step.Taken).To(BeTrue())
				Expect(step.Instruction).To(Equal(isa.Bnz{Target: 5}))
			})

		_, err := emu.Run()
		Expect(err).NotTo(HaveOccurred())
	})

	It("should stop on an invalid budget", func() {
		Expect(emu.Load(strings.NewReader(loopObject))).To(Succeed())
		emu.Budget = 0

		done, err := emu.Tick()
		Expect(err).To(MatchError(sim.ErrCycleBudget))
		Expect(done).To(BeFalse())

		_, err = emu.Run()
		Expect(err).To(MatchError(sim.ErrCycleBudget))
	})

	It("should run an assembled program to the end", func() {
		prog, err := asm.Assemble(branchSource)
		Expect(err).NotTo(HaveOccurred())

		emu.LoadProgram(prog)
		Expect(emu.LineNo()).To(Equal(1))

		done, err := emu.Tick()
		Expect(err).NotTo(HaveOccurred())
		Expect(done).To(BeFalse())
		Expect(emu.LineNo()).To(Equal(2))

		result, err := emu.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Halt).To(Equal(sim.HALT_END))
		Expect(result.State).To(Equal(sim.State{
			Register: [4]uint8{0xfe, 0xff, 0xfe, 0x00},
			PC:       5,
			Cycles:   4,
		}))
		Expect(emu.LineNo()).To(Equal(0))
	})

	It("should log each cycle when verbose", func() {
		var buf bytes.Buffer
		DeferCleanup(log.SetOutput, log.Writer())
		log.SetOutput(&buf)

		prog, err := asm.Assemble(branchSource)
		Expect(err).NotTo(HaveOccurred())

		emu.LoadProgram(prog)
		emu.Verbose = true

		_, err = emu.Run()
		Expect(err).NotTo(HaveOccurred())

		Expect(buf.String()).To(ContainSubstring("[STATE] clk: 1\tPC: 0x01"))
		Expect(buf.String()).To(ContainSubstring("[disassembly] 0x00: not r1 r0\t; line 1"))
		Expect(buf.String()).To(ContainSubstring("[disassembly] 0x02: bnz 0x04\t; line 3"))
		Expect(buf.String()).NotTo(ContainSubstring("not r3 r0"))
	})

	Describe("Check", func() {
		BeforeEach(func() {
			Expect(emu.Load(strings.NewReader(loopObject))).To(Succeed())
			_, err := emu.Run()
			Expect(err).NotTo(HaveOccurred())
		})

		It("should list the machine state", func() {
			values := map[string]string{}
			for key, value := range emu.Values() {
				values[key] = value.String()
			}

			Expect(values).To(Equal(map[string]string{
				"r0":      "5",
				"r1":      "1",
				"r2":      "0",
				"r3":      "4",
				"z":       "False",
				"pc":      "5",
				"cycles":  "20",
				"halted":  "True",
				"limited": "True",
			}))
		})

		It("should evaluate expressions", func() {
			for expr, expected := range map[string]bool{
				"r0 == 5 and r3 == 4":      true,
				"limited and halted":       true,
				"z":                        false,
				"pc == 5 and cycles == 20": true,
				"r1 + r2 == 2":             false,
				"[r0, r1]":                 true,
			} {
				ok, err := emu.Check(expr)
				Expect(err).NotTo(HaveOccurred(), expr)
				Expect(ok).To(Equal(expected), expr)
			}
		})

		It("should report bad expressions", func() {
			_, err := emu.Check("r0 +")
			Expect(err).To(HaveOccurred())

			var errCheck *ErrCheck
			Expect(err).To(BeAssignableToTypeOf(errCheck))
			Expect(err.Error()).To(ContainSubstring("r0 +"))

			_, err = emu.Check("r9 == 1")
			Expect(err).To(HaveOccurred())
		})
	})
})
