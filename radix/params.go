package radix

import (
	"net/url"
	"unicode/utf8"
)

func acquireBinder() *binder {
	return binderPool.Get().(*binder)
}

func releaseBinder(b *binder) {
	b.spans = b.spans[:0]
	binderPool.Put(b)
}

func (b *binder) mark() int {
	return len(b.spans)
}

func (b *binder) push(name, value string) {
	b.spans = append(b.spans, span{name: name, value: value})
}

// reset drops every binding pushed after mark.
func (b *binder) reset(mark int) {
	b.spans = b.spans[:mark]
}

// params decodes the captured spans. A binding that can not be percent-decoded
// or is not valid UTF-8 is skipped, the rest of the match still succeeds.
func (b *binder) params() Params {
	if len(b.spans) == 0 {
		return nil
	}

	ps := make(Params, 0, len(b.spans))

	for _, s := range b.spans {
		value, err := url.PathUnescape(s.value)
		if err != nil || !utf8.ValidString(s.name) || !utf8.ValidString(value) {
			continue
		}

		ps = append(ps, Param{Key: s.name, Value: value})
	}

	return ps
}

// Get returns the value of the first param with the given name.
func (ps Params) Get(name string) (string, bool) {
	for i := range ps {
		if ps[i].Key == name {
			return ps[i].Value, true
		}
	}

	return "", false
}

// ByName returns the value of the first param with the given name, or an
// empty string if there is none.
func (ps Params) ByName(name string) string {
	value, _ := ps.Get(name)
	return value
}
