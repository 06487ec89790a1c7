package encode

import "github.com/signadot/turbo-buf/format"

type EncodeOption func(*EncState)

func EncodeStyle(s format.Style) EncodeOption {
	return func(es *EncState) { es.style = s }
}

// Pretty selects PrettyStyle when v is true and DenseStyle otherwise.
func Pretty(v bool) EncodeOption {
	return func(es *EncState) {
		if v {
			es.style = format.PrettyStyle
			return
		}
		es.style = format.DenseStyle
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// StyleFromOpts extracts the style from encode options.
func StyleFromOpts(opts ...EncodeOption) format.Style {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.style
}
