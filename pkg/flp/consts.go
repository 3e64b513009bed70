package flp

// CurrentSDKVersion is the plugin API revision this package targets.
const CurrentSDKVersion = 1

// WavetableSize is the size of the wavetables the host shares with
// generators (32-bit float samples).
const WavetableSize = 16384

// MaxNameLen is the size of the host's fixed name buffers. Strings
// returned through GetName must fit MaxNameLen-1 bytes plus terminator.
const MaxNameLen = 256

// VoiceHandleNull is the host's "no voice" answer (FVH_Null).
const VoiceHandleNull = -1

// MIDIMsgNull kills a MIDI input message when written back through MIDIIn.
const MIDIMsgNull = 0xFFFFFFFF

// Capability flags declared in the plugin descriptor (TFruityPlugInfo.Flags).
const (
	FlagGenerator          = 1       // plugin is a generator, not an effect
	FlagRenderVoice        = 1 << 1  // generator renders voices separately (unused)
	FlagUseSampler         = 1 << 2  // hybrid generator streaming into the host sampler
	FlagGetChanCustomShape = 1 << 3  // uses the shape sample loaded in the parent channel
	FlagGetNoteInput       = 1 << 4  // accepts note events
	FlagWantNewTick        = 1 << 5  // notified before each mixed tick
	FlagNoProcess          = 1 << 6  // never processes buffers
	FlagNoWindow           = 1 << 10 // editor shown inside the channel settings window
	FlagInterfaceless      = 1 << 11 // host provides the interface (unused)
	FlagTimeWarp           = 1 << 13 // supports timewarps (unused)
	FlagMIDIOut            = 1 << 14 // sends MIDI out messages
	FlagDemoVersion        = 1 << 15 // demo: host won't save automation
	FlagCanSend            = 1 << 16 // has access to the send tracks
	FlagMsgOut             = 1 << 17 // sends delayed messages to itself
	FlagHybridCanRelease   = 1 << 18 // hybrid generator releases its own envelope
	FlagGetChanSample      = 1 << 19 // uses the sample loaded in the parent channel
	FlagWantFitTime        = 1 << 20 // fit-to-time selector in channel settings
	FlagNewVoiceParams     = 1 << 21 // mandatory: float pitch/pan voice params
	FlagCantSmartDisable   = 1 << 23 // can't be smart disabled
	FlagWantSettingsButton = 1 << 24 // settings button on the titlebar
)

// Host-to-plugin dispatcher IDs (FPD_*). Thread legend: (G) GUI thread,
// (M) mixer thread, (GM) either, (S) MIDI sync thread.
const (
	FPDShowEditor        = 0  // parent window handle in Value, 1 to hide (G)
	FPDProcessMode       = 1  // processing mode flags in Value (GM)
	FPDFlush             = 2  // continuity broken, clear buffers (GM)
	FPDSetBlockSize      = 3  // max processing length in samples (G)
	FPDSetSampleRate     = 4  // new rate in Value (G)
	FPDWindowMinMax      = 5  // min/max rect in Index, snap point in Value (G)
	FPDKillAVoice        = 6  // kill weakest voice, return 1 if done (GM)
	FPDUseVoiceLevels    = 7  // per-voice level support query (GM)
	FPDSetPreset         = 9  // internal preset index in Index (G)
	FPDChanSampleChanged = 10 // new channel sample/shape (G)
	FPDSetEnabled        = 11 // enabled state in Value (GM)
	FPDSetPlaying        = 12 // playing state in Value (GM)
	FPDSongPosChanged    = 13 // position relocated (GM)
	FPDSetTimeSig        = 14 // PTimeSigInfo in Value (G)
	FPDCollectFile       = 15 // file # in Index, filename PChar result (G)
	FPDSetInternalParam  = 16 // private, ignore (G)
	FPDSetNumSends       = 17 // send track count in Value (G)
	FPDLoadFile          = 18 // dropped filename in Value (G)
	FPDSetFitTime        = 19 // fit time in beats, float bits in Value (G)
	FPDSetSamplesPerTick = 20 // float bits in Value (GM)
	FPDSetIdleTime       = 21 // idle period ms in Value (G)
	FPDSetFocus          = 22 // editor focus state in Value (G)
	FPDTransport         = 23 // controller transport message, return 1 if handled (GM)
	FPDMIDIIn            = 24 // live MIDI preview, packed message in Value (GM)
	FPDRoutingChanged    = 25 // mixer routing changed (G)
	FPDGetParamInfo      = 26 // param # in Index, ParameterFlags result (G)
	FPDProjLoaded        = 27 // project finished loading (G)
	FPDWrapperLoadState  = 28 // private, pointer in Index, length in Value (G)
	FPDShowSettings      = 29 // settings button state in Value (G)
	FPDSetIOLatency      = 30 // input/output latency in Index/Value (G)
	FPDPreferredNumIO    = 32 // Patcher preferred IO count query (G)
)

// Plugin-to-host dispatcher IDs (FHD_*).
const (
	FHDParamMenu         = 0
	FHDEditorResized     = 2
	FHDNamesChanged      = 3
	FHDActivateMIDI      = 4
	FHDWantMIDIInput     = 5
	FHDWantMIDITick      = 6
	FHDKillAutomation    = 8
	FHDSetNumPresets     = 9
	FHDSetNewName        = 10
	FHDVSTiIdle          = 11
	FHDSelectChanSample  = 12
	FHDWantIdle          = 13
	FHDLocateDataFile    = 14
	FHDTicksToTime       = 16
	FHDAddNotesToPR      = 17
	FHDGetParamMenuEntry = 18
	FHDMsgBox            = 19
	FHDNoteOn            = 20
	FHDNoteOff           = 21
	FHDOnHintDirect      = 22
	FHDSetNewColor       = 23
	FHDGetInstance       = 24
	FHDKillIntCtrl       = 25
	FHDSetNumParams      = 27
	FHDPackDataFile      = 28
	FHDGetProgPath       = 29
	FHDSetLatency        = 30
	FHDCallDownloader    = 31
	FHDEditSample        = 32
	FHDSetThreadSafe     = 33
	FHDSmartDisable      = 34
	FHDSetUID            = 35
	FHDGetMixingTime     = 36
	FHDGetPlaybackTime   = 37
	FHDGetSelTime        = 38
	FHDGetTimeMul        = 39
	FHDCaptionize        = 40
	FHDSendSysEx         = 41
	FHDLoadAudioClip     = 42
	FHDLoadInChannel     = 43
	FHDShowInBrowser     = 44
	FHDDebugLogMsg       = 45
	FHDGetMainFormHandle = 46
	FHDGetProjDataPath   = 47
	FHDSetDirty          = 48
	FHDAddToRecent       = 49
	FHDGetNumInOut       = 50
	FHDGetInName         = 51
	FHDGetOutName        = 52
	FHDShowEditor        = 53
	FHDFloatAutomation   = 54
	FHDShowSettings      = 55
	FHDNoteOnOff         = 56
	FHDShowPicker        = 57
	FHDGetIdleOverflow   = 58
	FHDModalIdle         = 59
	FHDRenderProject     = 60
)

// Voice event IDs (FPV_*), both directions.
const (
	FPVRetrigger       = 0 // monophonic retrigger of a releasing voice
	FPVGetLength       = 1 // length in ticks, -1 if undefined
	FPVGetColor        = 2 // color 0..15, maps to MIDI channel
	FPVGetVelocity     = 3 // note-on velocity 0..1, float bits in result
	FPVGetRelVelocity  = 4 // release velocity 0..1, float bits in result
	FPVGetRelTime      = 5 // release time multiplicator 0..2, float bits
	FPVSetLinkVelocity = 6 // velocity/volume link switch in EventValue
)

// Name sections passed to GetName (FPN_*).
const (
	FPNParam          = 0
	FPNParamValue     = 1
	FPNSemitone       = 2
	FPNPatch          = 3
	FPNVoiceLevel     = 4
	FPNVoiceLevelHint = 5
	FPNPreset         = 6
	FPNOutCtrl        = 7
	FPNVoiceColor     = 8
	FPNOutVoice       = 9
)

// ParameterFlags describe one parameter (FPD_GetParamInfo result).
type ParameterFlags IntPtr

const (
	ParamCantInterpolate ParameterFlags = 1 // values are not levels
	ParamFloat           ParameterFlags = 2 // normalized 0..1 float, integer otherwise
	ParamCentered        ParameterFlags = 4 // appears centered in event editors
)

// ProcessModeFlags carry the FPD_ProcessMode value.
type ProcessModeFlags IntPtr

const (
	ProcessModeNormal        ProcessModeFlags = 0
	ProcessModeHQRealtime    ProcessModeFlags = 1
	ProcessModeHQNonRealtime ProcessModeFlags = 2
	ProcessModeIsRendering   ProcessModeFlags = 16
	// 3-bit interpolation quality value, shifted left by 8.
	ProcessModeIPMask ProcessModeFlags = 0xFFFF << 8
)

// ProcessParamFlags tell ProcessParam what to do (REC_*).
type ProcessParamFlags IntPtr

const (
	ParamUpdateValue   ProcessParamFlags = 1
	ParamGetValue      ProcessParamFlags = 2
	ParamShowHint      ProcessParamFlags = 4
	ParamUpdateControl ProcessParamFlags = 16
	// Value is 0..65536 from MIDI and must be translated to the control's
	// range; the translated value must be returned even without ParamGetValue.
	ParamFromMIDI     ProcessParamFlags = 32
	ParamNoLink       ProcessParamFlags = 1024
	ParamInternalCtrl ProcessParamFlags = 2048
	ParamPlugReserved ProcessParamFlags = 4096
)

// Has reports whether all bits of q are set.
func (f ProcessParamFlags) Has(q ProcessParamFlags) bool { return f&q == q }

// SampleLoadFlags for the host sample loader (FHLS_*).
type SampleLoadFlags IntPtr

const (
	SampleShowDialog   SampleLoadFlags = 1 // show an open box for the user
	SampleForceReload  SampleLoadFlags = 2 // reload even if the filename matches
	SampleGetName      SampleLoadFlags = 4 // only resolve the filename and format
	SampleNoResampling SampleLoadFlags = 8 // don't resample to the host rate
)

// NotesParamsFlags for AddToPianoRoll (NPF_*).
type NotesParamsFlags IntPtr

const (
	NotesEmptyFirst   NotesParamsFlags = 1 // clear the piano roll first
	NotesUseSelection NotesParamsFlags = 2 // place into the current selection
)

// In/out buffer flags used with the TIOBuffer accessors.
const (
	IOLock   = 0 // added before adding to the buffer
	IOUnlock = 1 // added after adding to the buffer
	IOFilled = 1 // buffer contains data
)
