package ir

// StringPool is a content-deduplicating store of strings owned by one tree.
// It only grows.
type StringPool struct {
	m     map[string]string
	bytes int
}

func NewStringPool() *StringPool {
	return &StringPool{m: map[string]string{}}
}

// Intern returns the pooled copy of b, adding one if b was not pooled yet.
// The empty input gives the null Str.
func (p *StringPool) Intern(b []byte) Str {
	if len(b) == 0 {
		return Str{}
	}
	if s, ok := p.m[string(b)]; ok {
		return Str{s: s, prov: Pooled}
	}
	s := string(b)
	p.m[s] = s
	p.bytes += len(s)
	return Str{s: s, prov: Pooled}
}

// InternString is Intern for strings.
func (p *StringPool) InternString(v string) Str {
	if len(v) == 0 {
		return Str{}
	}
	if s, ok := p.m[v]; ok {
		return Str{s: s, prov: Pooled}
	}
	p.m[v] = v
	p.bytes += len(v)
	return Str{s: v, prov: Pooled}
}

// Contains tells whether v has been interned.
func (p *StringPool) Contains(v string) bool {
	_, ok := p.m[v]
	return ok
}

// Len returns the number of distinct strings in the pool.
func (p *StringPool) Len() int {
	return len(p.m)
}

// Bytes returns the total size of the distinct strings in the pool.
func (p *StringPool) Bytes() int {
	return p.bytes
}
