package opencc

// Convenience methods give each named config parity with upstream's API,
// forwarding to Convert with that config fixed.

func (o *OpenCC) S2t(text string, punctuation bool) string   { return o.Convert(text, string(S2t), punctuation) }
func (o *OpenCC) T2s(text string, punctuation bool) string   { return o.Convert(text, string(T2s), punctuation) }
func (o *OpenCC) S2tw(text string, punctuation bool) string  { return o.Convert(text, string(S2tw), punctuation) }
func (o *OpenCC) Tw2s(text string, punctuation bool) string  { return o.Convert(text, string(Tw2s), punctuation) }
func (o *OpenCC) S2twp(text string, punctuation bool) string { return o.Convert(text, string(S2twp), punctuation) }
func (o *OpenCC) Tw2sp(text string, punctuation bool) string { return o.Convert(text, string(Tw2sp), punctuation) }
func (o *OpenCC) S2hk(text string, punctuation bool) string  { return o.Convert(text, string(S2hk), punctuation) }
func (o *OpenCC) Hk2s(text string, punctuation bool) string  { return o.Convert(text, string(Hk2s), punctuation) }
func (o *OpenCC) T2tw(text string) string                    { return o.Convert(text, string(T2tw), false) }
func (o *OpenCC) T2twp(text string) string                   { return o.Convert(text, string(T2twp), false) }
func (o *OpenCC) Tw2t(text string) string                    { return o.Convert(text, string(Tw2t), false) }
func (o *OpenCC) Tw2tp(text string) string                   { return o.Convert(text, string(Tw2tp), false) }
func (o *OpenCC) T2hk(text string) string                    { return o.Convert(text, string(T2hk), false) }
func (o *OpenCC) Hk2t(text string) string                    { return o.Convert(text, string(Hk2t), false) }
func (o *OpenCC) T2jp(text string) string                    { return o.Convert(text, string(T2jp), false) }
func (o *OpenCC) Jp2t(text string) string                    { return o.Convert(text, string(Jp2t), false) }
