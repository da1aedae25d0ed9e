package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/thelolagemann/gomeboy-core/internal/gameboy"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-core/pkg/display/web"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

func main() {
	bootROM := flag.String("boot", "", "The boot rom file to load (required)")
	romFile := flag.String("cart", "", "The cartridge rom file to map after the boot rom")
	frames := flag.Int("frames", 60, "The number of frames to run, 0 runs until a fault")
	screenshot := flag.String("screenshot", "", "Save the last frame as a PNG to this file")
	scale := flag.Int("scale", 2, "The screenshot scale factor")
	strict := flag.Bool("strict", true, "Fault on reads of cartridge RAM, IO and high RAM")
	serve := flag.String("serve", "", "Stream frames over websockets on this address, e.g. localhost:8080")
	colours := flag.String("palette", "greyscale", "The palette to use. Can be greyscale or green")
	timing := flag.String("timing", "carry", "The display timing policy. Can be carry or reset")
	debug := flag.Bool("debug", false, "Log every executed instruction")
	flag.Parse()

	logger := log.New(*debug)

	if *bootROM == "" {
		logger.Errorf("no boot rom provided")
		flag.Usage()
		os.Exit(2)
	}

	boot, err := utils.LoadFile(*bootROM)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if *debug {
		opts = append(opts, gameboy.Debug())
	}
	if *romFile != "" {
		rom, err := utils.LoadFile(*romFile)
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithCartridge(rom))
	}
	if !*strict {
		opts = append(opts, gameboy.WithAccessPolicy(mmu.Permissive))
	}
	switch strings.ToLower(*colours) {
	case "greyscale", "grayscale":
	case "green":
		opts = append(opts, gameboy.WithPalette(palette.Green))
	default:
		logger.Errorf("unknown palette %q", *colours)
		os.Exit(2)
	}
	switch strings.ToLower(*timing) {
	case "carry":
	case "reset":
		opts = append(opts, gameboy.WithTimingPolicy(ppu.ResetToZero))
	default:
		logger.Errorf("unknown timing policy %q", *timing)
		os.Exit(2)
	}

	gb, err := gameboy.New(boot, opts...)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	var hub *web.Hub
	var ticker *time.Ticker
	if *serve != "" {
		hub = web.NewHub(logger)
		go hub.Run()
		defer hub.Close()

		go func() {
			logger.Infof("serving frames on ws://%s/", *serve)
			if err := http.ListenAndServe(*serve, hub); err != nil {
				logger.Errorf("web: %v", err)
			}
		}()

		// pace frames to the hardware refresh rate
		ticker = time.NewTicker(time.Second * gameboy.CyclesPerFrame / gameboy.ClockSpeed)
		defer ticker.Stop()
	}

	var pixels *[ppu.ScreenWidth * ppu.ScreenHeight]uint32
	for *frames == 0 || gb.Frames() < uint64(*frames) {
		pixels, err = gb.Frame()
		if err != nil {
			break
		}
		if hub != nil {
			hub.PushFrame(pixels[:])
			<-ticker.C
		}
	}

	if *screenshot != "" && gb.Frames() > 0 {
		img := utils.FrameImage(gb.PPU.PixelBuffer()[:], ppu.ScreenWidth, ppu.ScreenHeight, *scale)
		if err := utils.SavePNG(*screenshot, img); err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		logger.Infof("saved frame %d to %s", gb.Frames(), *screenshot)
	}

	if err != nil {
		// already logged by the session
		os.Exit(1)
	}
	logger.Infof("ran %d frames, checksum %016x", gb.Frames(), gb.PPU.Checksum())
}
