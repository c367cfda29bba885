package main

import (
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/perlin-network/ringbuffer/types/ringbuffer"
	"github.com/pkg/errors"
)

type opKind int

const (
	pushBack opKind = iota
	pushFront
	popBack
	popFront
)

var opNames = map[string]opKind{
	"pb": pushBack,
	"pf": pushFront,
	"ob": popBack,
	"of": popFront,
}

type op struct {
	kind  opKind
	value int
}

func (o op) String() string {
	switch o.kind {
	case pushBack:
		return "push_back(" + strconv.Itoa(o.value) + ")"
	case pushFront:
		return "push_front(" + strconv.Itoa(o.value) + ")"
	case popBack:
		return "pop_back()"
	default:
		return "pop_front()"
	}
}

// scenario pushes past the initial capacity of 2 and then pops both ends.
var scenario = []op{
	{kind: pushBack, value: 1},
	{kind: pushBack, value: 2},
	{kind: pushBack, value: 3},
	{kind: pushFront, value: 0},
	{kind: popBack},
	{kind: popFront},
}

// parseOps parses a comma separated list such as "pb:1,pf:2,ob,of".
func parseOps(list string) ([]op, error) {
	var ops []op

	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		name, arg, hasArg := strings.Cut(field, ":")
		kind, ok := opNames[name]
		if !ok {
			return nil, errors.Errorf("unknown op %q", field)
		}

		o := op{kind: kind}
		switch kind {
		case pushBack, pushFront:
			if !hasArg {
				return nil, errors.Errorf("op %q needs a value", field)
			}
			v, err := strconv.Atoi(arg)
			if err != nil {
				return nil, errors.Wrapf(err, "op %q has a bad value", field)
			}
			o.value = v
		default:
			if hasArg {
				return nil, errors.Errorf("op %q takes no value", field)
			}
		}

		ops = append(ops, o)
	}

	return ops, nil
}

// apply runs o against b and returns the popped value, if any.
func apply(b *ringbuffer.RingBuffer[int], o op) (int, bool) {
	switch o.kind {
	case pushBack:
		b.PushBack(o.value)
	case pushFront:
		b.PushFront(o.value)
	case popBack:
		return b.PopBack()
	case popFront:
		return b.PopFront()
	}
	return 0, false
}

func run(b *ringbuffer.RingBuffer[int], ops []op) {
	for _, o := range ops {
		v, popped := apply(b, o)

		switch {
		case o.kind == pushBack || o.kind == pushFront:
			glog.Infof("%s -> %v", o, b)
		case popped:
			glog.Infof("%s = %d -> %v", o, v, b)
		default:
			glog.Infof("%s on empty buffer", o)
		}

		glog.V(2).Infof("len=%d cap=%d", b.Len(), b.Cap())
	}
}
