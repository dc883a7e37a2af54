package codec

import (
	"strings"

	"github.com/zhubert/msgcodec/internal/logger"
)

// Action selects the direction of a transform.
type Action int

const (
	ActionEncode Action = iota
	ActionDecode
)

func (a Action) String() string {
	if a == ActionDecode {
		return "decode"
	}
	return "encode"
}

// Service applies the active transform on behalf of row actions.
type Service struct {
	transform Transform
}

// NewService creates a service for the named transform.
func NewService(name string) (*Service, error) {
	t, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return &Service{transform: t}, nil
}

// Transform returns the active transform.
func (s *Service) Transform() Transform {
	return s.transform
}

// Apply runs the action over text. ok is false when text is blank, in which
// case no result should be produced.
func (s *Service) Apply(action Action, text string) (result string, ok bool, err error) {
	if strings.TrimSpace(text) == "" {
		return "", false, nil
	}

	switch action {
	case ActionDecode:
		result, err = s.transform.Decode(text)
		if err != nil {
			logger.WithComponent("codec").Debug("decode rejected", "transform", s.transform.Name(), "error", err)
			return "", false, err
		}
	default:
		result = s.transform.Encode(text)
	}
	return result, true, nil
}
