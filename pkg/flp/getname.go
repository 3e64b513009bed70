package flp

// NameRequest is a typed view of one GetName call. Answers go back through
// the host's fixed 256-byte buffer; longer strings are truncated.
type NameRequest interface {
	nameRequest()
}

// NameOfParam asks for the name of a parameter.
type NameOfParam struct {
	Index int
}

// NameOfParamValue asks for the textual form of a parameter's value.
type NameOfParamValue struct {
	Index int
	Value int
}

// NameOfSemitone asks for the name of a note. Mode 0 means the name as
// played, 1 the name as a dropped zipped-loop piece.
type NameOfSemitone struct {
	Note int
	Mode int
}

// NameOfPatch asks for the name of a patch (not used by hosts today).
type NameOfPatch struct {
	Index int
}

// NameOfVoiceLevel asks for the short name of a per-voice level (pan, vol,
// filter cutoff...).
type NameOfVoiceLevel struct {
	Index int
}

// NameOfVoiceLevelHint asks for a longer description of a per-voice level.
type NameOfVoiceLevelHint struct {
	Index int
}

// NameOfPreset asks for the name of an internal preset.
type NameOfPreset struct {
	Index int
}

// NameOfOutCtrl asks for the name of an output controller.
type NameOfOutCtrl struct {
	Index int
}

// NameOfVoiceColor asks for the name of a note color (MIDI channel).
type NameOfVoiceColor struct {
	Index int
}

// NameOfOutVoice asks for the name of an output voice.
type NameOfOutVoice struct {
	Index int
}

func (NameOfParam) nameRequest()          {}
func (NameOfParamValue) nameRequest()     {}
func (NameOfSemitone) nameRequest()       {}
func (NameOfPatch) nameRequest()          {}
func (NameOfVoiceLevel) nameRequest()     {}
func (NameOfVoiceLevelHint) nameRequest() {}
func (NameOfPreset) nameRequest()         {}
func (NameOfOutCtrl) nameRequest()        {}
func (NameOfVoiceColor) nameRequest()     {}
func (NameOfOutVoice) nameRequest()       {}

// DecodeNameRequest turns a raw GetName call into its typed form. Unknown
// sections decode to nil; the caller answers with an empty string.
func DecodeNameRequest(section, index, value int) NameRequest {
	switch section {
	case FPNParam:
		return NameOfParam{Index: index}
	case FPNParamValue:
		return NameOfParamValue{Index: index, Value: value}
	case FPNSemitone:
		return NameOfSemitone{Note: index, Mode: value}
	case FPNPatch:
		return NameOfPatch{Index: index}
	case FPNVoiceLevel:
		return NameOfVoiceLevel{Index: index}
	case FPNVoiceLevelHint:
		return NameOfVoiceLevelHint{Index: index}
	case FPNPreset:
		return NameOfPreset{Index: index}
	case FPNOutCtrl:
		return NameOfOutCtrl{Index: index}
	case FPNVoiceColor:
		return NameOfVoiceColor{Index: index}
	case FPNOutVoice:
		return NameOfOutVoice{Index: index}
	default:
		return nil
	}
}
