package script

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bradenaw/juniper/iterator"
	"github.com/inconshreveable/log15"

	"github.com/bradenaw/linear"
)

// ErrBadStep is returned for steps that name an unknown target or operation, or have the wrong
// arguments. It is never an expected error.
var ErrBadStep = errors.New("bad step")

// Runner holds one of each container, all of strings, and applies steps to them.
type Runner struct {
	logger log15.Logger

	list  *linear.List[string]
	array *linear.Array[string]
	stack *linear.ArrayStack[string]
	queue *linear.ListQueue[string]
}

func NewRunner(logger log15.Logger, arraySize int, stackCapacity int) (*Runner, error) {
	array, err := linear.NewArray[string](arraySize)
	if err != nil {
		return nil, err
	}
	stack, err := linear.NewArrayStack[string](stackCapacity)
	if err != nil {
		return nil, err
	}
	return &Runner{
		logger: logger,
		list:   linear.NewList[string](),
		array:  array,
		stack:  stack,
		queue:  linear.NewListQueue[string](),
	}, nil
}

// Run applies every step in order. It stops at the first malformed step, and otherwise returns an
// error if any step's outcome disagreed with its ExpectError.
func (r *Runner) Run(steps []Step) error {
	mismatched := 0
	for i, step := range steps {
		logger := r.logger.New("step", i, "target", step.Target, "op", step.Op)
		result, err := r.Step(step)
		if errors.Is(err, ErrBadStep) {
			logger.Error("Malformed step", "err", err)
			return fmt.Errorf("step %d: %w", i, err)
		}
		state := r.render(step.Target)
		switch {
		case err != nil && step.ExpectError:
			logger.Debug("Step failed as expected", "err", err, "state", state)
		case err != nil:
			mismatched++
			logger.Warn("Step failed", "args", step.Args, "err", err, "state", state)
		case step.ExpectError:
			mismatched++
			logger.Warn(
				"Step succeeded, expected an error",
				"args", step.Args,
				"result", result,
				"state", state,
			)
		default:
			logger.Info("Step", "args", step.Args, "result", result, "state", state)
		}
	}
	if mismatched > 0 {
		return fmt.Errorf("%d of %d steps did not have the expected outcome", mismatched, len(steps))
	}
	return nil
}

// Step applies one step and returns a rendering of its result.
func (r *Runner) Step(step Step) (string, error) {
	ops, ok := targets[step.Target]
	if !ok {
		return "", fmt.Errorf("%w: unknown target %q", ErrBadStep, step.Target)
	}
	o, ok := ops[step.Op]
	if !ok {
		return "", fmt.Errorf("%w: unknown op %q for %s", ErrBadStep, step.Op, step.Target)
	}
	if len(step.Args) != o.nArgs {
		return "", fmt.Errorf(
			"%w: %s.%s takes %d args, got %d",
			ErrBadStep,
			step.Target,
			step.Op,
			o.nArgs,
			len(step.Args),
		)
	}
	return o.fn(r, step.Args)
}

func (r *Runner) render(target string) string {
	switch target {
	case "list":
		return r.list.String()
	case "array":
		return r.array.String()
	case "stack":
		return r.stack.String()
	case "queue":
		return r.queue.String()
	}
	return ""
}

type op struct {
	nArgs int
	fn    func(r *Runner, args []string) (string, error)
}

var targets = map[string]map[string]op{
	"list": {
		"append": {1, func(r *Runner, args []string) (string, error) {
			r.list.Append(args[0])
			return "", nil
		}},
		"prepend": {1, func(r *Runner, args []string) (string, error) {
			r.list.Prepend(args[0])
			return "", nil
		}},
		"insert_before": {2, func(r *Runner, args []string) (string, error) {
			return "", r.list.InsertBefore(args[0], args[1])
		}},
		"insert_after": {2, func(r *Runner, args []string) (string, error) {
			return "", r.list.InsertAfter(args[0], args[1])
		}},
		"insert_at_index": {2, func(r *Runner, args []string) (string, error) {
			i, err := index(args[0])
			if err != nil {
				return "", err
			}
			return "", r.list.InsertAtIndex(i, args[1])
		}},
		"get": {1, func(r *Runner, args []string) (string, error) {
			i, err := index(args[0])
			if err != nil {
				return "", err
			}
			return r.list.Get(i)
		}},
		"set": {2, func(r *Runner, args []string) (string, error) {
			i, err := index(args[0])
			if err != nil {
				return "", err
			}
			return "", r.list.Set(i, args[1])
		}},
		"remove_first": {0, func(r *Runner, _ []string) (string, error) {
			return r.list.RemoveFirst()
		}},
		"remove_last": {0, func(r *Runner, _ []string) (string, error) {
			return r.list.RemoveLast()
		}},
		"extract": {1, func(r *Runner, args []string) (string, error) {
			return "", r.list.Extract(args[0])
		}},
		"extract_all": {1, func(r *Runner, args []string) (string, error) {
			n, err := r.list.ExtractAll(args[0])
			return strconv.Itoa(n), err
		}},
		"first": {0, func(r *Runner, _ []string) (string, error) {
			return r.list.First()
		}},
		"last": {0, func(r *Runner, _ []string) (string, error) {
			return r.list.Last()
		}},
		"contains": {1, func(r *Runner, args []string) (string, error) {
			return strconv.FormatBool(r.list.Contains(args[0])), nil
		}},
		"len": {0, func(r *Runner, _ []string) (string, error) {
			return strconv.Itoa(r.list.Len()), nil
		}},
		"clear": {0, func(r *Runner, _ []string) (string, error) {
			r.list.Clear()
			return "", nil
		}},
		"reverse": {0, func(r *Runner, _ []string) (string, error) {
			return linear.ListOf(iterator.Collect(r.list.ReverseIterate())...).String(), nil
		}},
	},
	"array": {
		"resize": {1, func(r *Runner, args []string) (string, error) {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return "", fmt.Errorf("%w: size %q: %s", ErrBadStep, args[0], err)
			}
			return "", r.array.Resize(n)
		}},
		"get": {1, func(r *Runner, args []string) (string, error) {
			i, err := index(args[0])
			if err != nil {
				return "", err
			}
			item, ok, err := r.array.Lookup(i)
			if err == nil && !ok {
				return "<empty>", nil
			}
			return item, err
		}},
		"set": {2, func(r *Runner, args []string) (string, error) {
			i, err := index(args[0])
			if err != nil {
				return "", err
			}
			return "", r.array.Set(i, args[1])
		}},
		"clear": {1, func(r *Runner, args []string) (string, error) {
			i, err := index(args[0])
			if err != nil {
				return "", err
			}
			return "", r.array.Clear(i)
		}},
		"remove_at": {1, func(r *Runner, args []string) (string, error) {
			i, err := index(args[0])
			if err != nil {
				return "", err
			}
			return "", r.array.RemoveAt(i)
		}},
		"contains": {1, func(r *Runner, args []string) (string, error) {
			return strconv.FormatBool(r.array.Contains(args[0])), nil
		}},
		"len": {0, func(r *Runner, _ []string) (string, error) {
			return strconv.Itoa(r.array.Len()), nil
		}},
	},
	"stack": {
		"push": {1, func(r *Runner, args []string) (string, error) {
			return "", r.stack.Push(args[0])
		}},
		"pop": {0, func(r *Runner, _ []string) (string, error) {
			return r.stack.Pop()
		}},
		"top": {0, func(r *Runner, _ []string) (string, error) {
			return r.stack.Top()
		}},
		"len": {0, func(r *Runner, _ []string) (string, error) {
			return strconv.Itoa(r.stack.Len()), nil
		}},
	},
	"queue": {
		"enqueue": {1, func(r *Runner, args []string) (string, error) {
			r.queue.Enqueue(args[0])
			return "", nil
		}},
		"dequeue": {0, func(r *Runner, _ []string) (string, error) {
			return r.queue.Dequeue()
		}},
		"front": {0, func(r *Runner, _ []string) (string, error) {
			return r.queue.Front()
		}},
		"len": {0, func(r *Runner, _ []string) (string, error) {
			return strconv.Itoa(r.queue.Len()), nil
		}},
	},
}

func index(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q: %s", ErrBadStep, s, err)
	}
	return i, nil
}
