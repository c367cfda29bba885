package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/perlin-network/ringbuffer/types/ringbuffer"
)

func main() {
	capacityFlag := flag.Int("capacity", 0, "initial capacity used with -ops")
	opsFlag := flag.String("ops", "", "ops to apply, e.g. pb:1,pf:2,ob,of")
	scenarioFlag := flag.Bool("scenario", false, "run the built-in scenario")

	flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	ops := scenario
	capacity := 2

	if len(*opsFlag) > 0 && !*scenarioFlag {
		parsed, err := parseOps(*opsFlag)
		if err != nil {
			glog.Errorf("%+v", err)
			glog.Flush()
			os.Exit(1)
		}
		ops = parsed
		capacity = *capacityFlag
	}

	if capacity < 0 {
		glog.Errorf("capacity must not be negative, got %d", capacity)
		glog.Flush()
		os.Exit(1)
	}

	b := ringbuffer.WithCapacity[int](capacity)
	glog.Infof("Starting with capacity %d", b.Cap())

	run(b, ops)
}
