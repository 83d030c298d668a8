//go:build windows

package winmm

// Tag is a waveform-audio format type. The values correspond to the
// WAVE_FORMAT_* registration constants in mmreg.h. Only tags present in
// TagNames are accepted when decoding a format from a .wav stream.
type Tag uint16

const (
	WAVE_FORMAT_UNKNOWN                    Tag = 0x0000
	WAVE_FORMAT_PCM                        Tag = 0x0001
	WAVE_FORMAT_ADPCM                      Tag = 0x0002
	WAVE_FORMAT_IEEE_FLOAT                 Tag = 0x0003
	WAVE_FORMAT_VSELP                      Tag = 0x0004
	WAVE_FORMAT_IBM_CVSD                   Tag = 0x0005
	WAVE_FORMAT_ALAW                       Tag = 0x0006
	WAVE_FORMAT_MULAW                      Tag = 0x0007
	WAVE_FORMAT_DTS                        Tag = 0x0008
	WAVE_FORMAT_DRM                        Tag = 0x0009
	WAVE_FORMAT_WMAVOICE9                  Tag = 0x000A
	WAVE_FORMAT_WMAVOICE10                 Tag = 0x000B
	WAVE_FORMAT_OKI_ADPCM                  Tag = 0x0010
	WAVE_FORMAT_DVI_ADPCM                  Tag = 0x0011
	WAVE_FORMAT_MEDIASPACE_ADPCM           Tag = 0x0012
	WAVE_FORMAT_SIERRA_ADPCM               Tag = 0x0013
	WAVE_FORMAT_G723_ADPCM                 Tag = 0x0014
	WAVE_FORMAT_DIGISTD                    Tag = 0x0015
	WAVE_FORMAT_DIGIFIX                    Tag = 0x0016
	WAVE_FORMAT_DIALOGIC_OKI_ADPCM         Tag = 0x0017
	WAVE_FORMAT_MEDIAVISION_ADPCM          Tag = 0x0018
	WAVE_FORMAT_CU_CODEC                   Tag = 0x0019
	WAVE_FORMAT_HP_DYN_VOICE               Tag = 0x001A
	WAVE_FORMAT_YAMAHA_ADPCM               Tag = 0x0020
	WAVE_FORMAT_SONARC                     Tag = 0x0021
	WAVE_FORMAT_DSPGROUP_TRUESPEECH        Tag = 0x0022
	WAVE_FORMAT_ECHOSC1                    Tag = 0x0023
	WAVE_FORMAT_AUDIOFILE_AF36             Tag = 0x0024
	WAVE_FORMAT_APTX                       Tag = 0x0025
	WAVE_FORMAT_AUDIOFILE_AF10             Tag = 0x0026
	WAVE_FORMAT_PROSODY_1612               Tag = 0x0027
	WAVE_FORMAT_LRC                        Tag = 0x0028
	WAVE_FORMAT_DOLBY_AC2                  Tag = 0x0030
	WAVE_FORMAT_GSM610                     Tag = 0x0031
	WAVE_FORMAT_MSNAUDIO                   Tag = 0x0032
	WAVE_FORMAT_ANTEX_ADPCME               Tag = 0x0033
	WAVE_FORMAT_CONTROL_RES_VQLPC          Tag = 0x0034
	WAVE_FORMAT_DIGIREAL                   Tag = 0x0035
	WAVE_FORMAT_DIGIADPCM                  Tag = 0x0036
	WAVE_FORMAT_CONTROL_RES_CR10           Tag = 0x0037
	WAVE_FORMAT_NMS_VBXADPCM               Tag = 0x0038
	WAVE_FORMAT_CS_IMAADPCM                Tag = 0x0039
	WAVE_FORMAT_ECHOSC3                    Tag = 0x003A
	WAVE_FORMAT_ROCKWELL_ADPCM             Tag = 0x003B
	WAVE_FORMAT_ROCKWELL_DIGITALK          Tag = 0x003C
	WAVE_FORMAT_XEBEC                      Tag = 0x003D
	WAVE_FORMAT_G721_ADPCM                 Tag = 0x0040
	WAVE_FORMAT_G728_CELP                  Tag = 0x0041
	WAVE_FORMAT_MSG723                     Tag = 0x0042
	WAVE_FORMAT_INTEL_G723_1               Tag = 0x0043
	WAVE_FORMAT_INTEL_G729                 Tag = 0x0044
	WAVE_FORMAT_SHARP_G726                 Tag = 0x0045
	WAVE_FORMAT_MPEG                       Tag = 0x0050
	WAVE_FORMAT_RT24                       Tag = 0x0052
	WAVE_FORMAT_PAC                        Tag = 0x0053
	WAVE_FORMAT_MPEGLAYER3                 Tag = 0x0055
	WAVE_FORMAT_LUCENT_G723                Tag = 0x0059
	WAVE_FORMAT_CIRRUS                     Tag = 0x0060
	WAVE_FORMAT_ESPCM                      Tag = 0x0061
	WAVE_FORMAT_VOXWARE                    Tag = 0x0062
	WAVE_FORMAT_CANOPUS_ATRAC              Tag = 0x0063
	WAVE_FORMAT_G726_ADPCM                 Tag = 0x0064
	WAVE_FORMAT_G722_ADPCM                 Tag = 0x0065
	WAVE_FORMAT_DSAT                       Tag = 0x0066
	WAVE_FORMAT_DSAT_DISPLAY               Tag = 0x0067
	WAVE_FORMAT_VOXWARE_BYTE_ALIGNED       Tag = 0x0069
	WAVE_FORMAT_VOXWARE_AC8                Tag = 0x0070
	WAVE_FORMAT_VOXWARE_AC10               Tag = 0x0071
	WAVE_FORMAT_VOXWARE_AC16               Tag = 0x0072
	WAVE_FORMAT_VOXWARE_AC20               Tag = 0x0073
	WAVE_FORMAT_VOXWARE_RT24               Tag = 0x0074
	WAVE_FORMAT_VOXWARE_RT29               Tag = 0x0075
	WAVE_FORMAT_VOXWARE_RT29HW             Tag = 0x0076
	WAVE_FORMAT_VOXWARE_VR12               Tag = 0x0077
	WAVE_FORMAT_VOXWARE_VR18               Tag = 0x0078
	WAVE_FORMAT_VOXWARE_TQ40               Tag = 0x0079
	WAVE_FORMAT_VOXWARE_SC3                Tag = 0x007A
	WAVE_FORMAT_VOXWARE_SC3_1              Tag = 0x007B
	WAVE_FORMAT_SOFTSOUND                  Tag = 0x0080
	WAVE_FORMAT_VOXWARE_TQ60               Tag = 0x0081
	WAVE_FORMAT_MSRT24                     Tag = 0x0082
	WAVE_FORMAT_G729A                      Tag = 0x0083
	WAVE_FORMAT_MVI_MVI2                   Tag = 0x0084
	WAVE_FORMAT_DF_G726                    Tag = 0x0085
	WAVE_FORMAT_DF_GSM610                  Tag = 0x0086
	WAVE_FORMAT_ISIAUDIO                   Tag = 0x0088
	WAVE_FORMAT_ONLIVE                     Tag = 0x0089
	WAVE_FORMAT_MULTITUDE_FT_SX20          Tag = 0x008A
	WAVE_FORMAT_INFOCOM_ITS_G721_ADPCM     Tag = 0x008B
	WAVE_FORMAT_CONVEDIA_G729              Tag = 0x008C
	WAVE_FORMAT_CONGRUENCY                 Tag = 0x008D
	WAVE_FORMAT_SBC24                      Tag = 0x0091
	WAVE_FORMAT_DOLBY_AC3_SPDIF            Tag = 0x0092
	WAVE_FORMAT_MEDIASONIC_G723            Tag = 0x0093
	WAVE_FORMAT_PROSODY_8KBPS              Tag = 0x0094
	WAVE_FORMAT_ZYXEL_ADPCM                Tag = 0x0097
	WAVE_FORMAT_PHILIPS_LPCBB              Tag = 0x0098
	WAVE_FORMAT_PACKED                     Tag = 0x0099
	WAVE_FORMAT_MALDEN_PHONYTALK           Tag = 0x00A0
	WAVE_FORMAT_RACAL_RECORDER_GSM         Tag = 0x00A1
	WAVE_FORMAT_RACAL_RECORDER_G720_A      Tag = 0x00A2
	WAVE_FORMAT_RACAL_RECORDER_G723_1      Tag = 0x00A3
	WAVE_FORMAT_RACAL_RECORDER_TETRA_ACELP Tag = 0x00A4
	WAVE_FORMAT_NEC_AAC                    Tag = 0x00B0
	WAVE_FORMAT_RAW_AAC1                   Tag = 0x00FF
	WAVE_FORMAT_RHETOREX_ADPCM             Tag = 0x0100
	WAVE_FORMAT_IRAT                       Tag = 0x0101
	WAVE_FORMAT_VIVO_G723                  Tag = 0x0111
	WAVE_FORMAT_VIVO_SIREN                 Tag = 0x0112
	WAVE_FORMAT_PHILIPS_CELP               Tag = 0x0120
	WAVE_FORMAT_PHILIPS_GRUNDIG            Tag = 0x0121
	WAVE_FORMAT_DIGITAL_G723               Tag = 0x0123
	WAVE_FORMAT_SANYO_LD_ADPCM             Tag = 0x0125
	WAVE_FORMAT_SIPROLAB_ACEPLNET          Tag = 0x0130
	WAVE_FORMAT_SIPROLAB_ACELP4800         Tag = 0x0131
	WAVE_FORMAT_SIPROLAB_ACELP8V3          Tag = 0x0132
	WAVE_FORMAT_SIPROLAB_G729              Tag = 0x0133
	WAVE_FORMAT_SIPROLAB_G729A             Tag = 0x0134
	WAVE_FORMAT_SIPROLAB_KELVIN            Tag = 0x0135
	WAVE_FORMAT_VOICEAGE_AMR               Tag = 0x0136
	WAVE_FORMAT_G726ADPCM                  Tag = 0x0140
	WAVE_FORMAT_DICTAPHONE_CELP68          Tag = 0x0141
	WAVE_FORMAT_DICTAPHONE_CELP54          Tag = 0x0142
	WAVE_FORMAT_QUALCOMM_PUREVOICE         Tag = 0x0150
	WAVE_FORMAT_QUALCOMM_HALFRATE          Tag = 0x0151
	WAVE_FORMAT_TUBGSM                     Tag = 0x0155
	WAVE_FORMAT_MSAUDIO1                   Tag = 0x0160
	WAVE_FORMAT_WMAUDIO2                   Tag = 0x0161
	WAVE_FORMAT_WMAUDIO3                   Tag = 0x0162
	WAVE_FORMAT_WMAUDIO_LOSSLESS           Tag = 0x0163
	WAVE_FORMAT_WMASPDIF                   Tag = 0x0164
	WAVE_FORMAT_UNISYS_NAP_ADPCM           Tag = 0x0170
	WAVE_FORMAT_UNISYS_NAP_ULAW            Tag = 0x0171
	WAVE_FORMAT_UNISYS_NAP_ALAW            Tag = 0x0172
	WAVE_FORMAT_UNISYS_NAP_16K             Tag = 0x0173
	WAVE_FORMAT_SYCOM_ACM_SYC008           Tag = 0x0174
	WAVE_FORMAT_SYCOM_ACM_SYC701_G726L     Tag = 0x0175
	WAVE_FORMAT_SYCOM_ACM_SYC701_CELP54    Tag = 0x0176
	WAVE_FORMAT_SYCOM_ACM_SYC701_CELP68    Tag = 0x0177
	WAVE_FORMAT_KNOWLEDGE_ADVENTURE_ADPCM  Tag = 0x0178
	WAVE_FORMAT_FRAUNHOFER_IIS_MPEG2_AAC   Tag = 0x0180
	WAVE_FORMAT_DTS_DS                     Tag = 0x0190
	WAVE_FORMAT_CREATIVE_ADPCM             Tag = 0x0200
	WAVE_FORMAT_CREATIVE_FASTSPEECH8       Tag = 0x0202
	WAVE_FORMAT_CREATIVE_FASTSPEECH10      Tag = 0x0203
	WAVE_FORMAT_UHER_ADPCM                 Tag = 0x0210
	WAVE_FORMAT_ULEAD_DV_AUDIO             Tag = 0x0215
	WAVE_FORMAT_ULEAD_DV_AUDIO_1           Tag = 0x0216
	WAVE_FORMAT_QUARTERDECK                Tag = 0x0220
	WAVE_FORMAT_ILINK_VC                   Tag = 0x0230
	WAVE_FORMAT_RAW_SPORT                  Tag = 0x0240
	WAVE_FORMAT_ESST_AC3                   Tag = 0x0241
	WAVE_FORMAT_GENERIC_PASSTHRU           Tag = 0x0249
	WAVE_FORMAT_IPI_HSX                    Tag = 0x0250
	WAVE_FORMAT_IPI_RPELP                  Tag = 0x0251
	WAVE_FORMAT_CS2                        Tag = 0x0260
	WAVE_FORMAT_SONY_SCX                   Tag = 0x0270
	WAVE_FORMAT_SONY_SCY                   Tag = 0x0271
	WAVE_FORMAT_SONY_ATRAC3                Tag = 0x0272
	WAVE_FORMAT_SONY_SPC                   Tag = 0x0273
	WAVE_FORMAT_TELUM_AUDIO                Tag = 0x0280
	WAVE_FORMAT_TELUM_IA_AUDIO             Tag = 0x0281
	WAVE_FORMAT_NORCOM_VOICE_SYSTEMS_ADPCM Tag = 0x0285
	WAVE_FORMAT_FM_TOWNS_SND               Tag = 0x0300
	WAVE_FORMAT_MICRONAS                   Tag = 0x0350
	WAVE_FORMAT_MICRONAS_CELP833           Tag = 0x0351
	WAVE_FORMAT_BTV_DIGITAL                Tag = 0x0400
	WAVE_FORMAT_INTEL_MUSIC_CODER          Tag = 0x0401
	WAVE_FORMAT_INDEO_AUDIO                Tag = 0x0402
	WAVE_FORMAT_QDESIGN_MUSIC              Tag = 0x0450
	WAVE_FORMAT_ON2_VP7_AUDIO              Tag = 0x0500
	WAVE_FORMAT_ON2_VP6_AUDIO              Tag = 0x0501
	WAVE_FORMAT_VME_VMPCM                  Tag = 0x0680
	WAVE_FORMAT_TPC                        Tag = 0x0681
	WAVE_FORMAT_LIGHTWAVE_LOSSLESS         Tag = 0x08AE
	WAVE_FORMAT_OLIGSM                     Tag = 0x1000
	WAVE_FORMAT_OLIADPCM                   Tag = 0x1001
	WAVE_FORMAT_OLICELP                    Tag = 0x1002
	WAVE_FORMAT_OLISBC                     Tag = 0x1003
	WAVE_FORMAT_OLIOPR                     Tag = 0x1004
	WAVE_FORMAT_LH_CODEC                   Tag = 0x1100
	WAVE_FORMAT_LH_CODEC_CELP              Tag = 0x1101
	WAVE_FORMAT_LH_CODEC_SBC8              Tag = 0x1102
	WAVE_FORMAT_LH_CODEC_SBC12             Tag = 0x1103
	WAVE_FORMAT_LH_CODEC_SBC16             Tag = 0x1104
	WAVE_FORMAT_NORRIS                     Tag = 0x1400
	WAVE_FORMAT_ISIAUDIO_2                 Tag = 0x1401
	WAVE_FORMAT_SOUNDSPACE_MUSICOMPRESS    Tag = 0x1500
	WAVE_FORMAT_MPEG_ADTS_AAC              Tag = 0x1600
	WAVE_FORMAT_MPEG_RAW_AAC               Tag = 0x1601
	WAVE_FORMAT_MPEG_LOAS                  Tag = 0x1602
	WAVE_FORMAT_NOKIA_MPEG_ADTS_AAC        Tag = 0x1608
	WAVE_FORMAT_NOKIA_MPEG_RAW_AAC         Tag = 0x1609
	WAVE_FORMAT_VODAFONE_MPEG_ADTS_AAC     Tag = 0x160A
	WAVE_FORMAT_VODAFONE_MPEG_RAW_AAC      Tag = 0x160B
	WAVE_FORMAT_MPEG_HEAAC                 Tag = 0x1610
	WAVE_FORMAT_VOXWARE_RT24_SPEECH        Tag = 0x181C
	WAVE_FORMAT_SONICFOUNDRY_LOSSLESS      Tag = 0x1971
	WAVE_FORMAT_INNINGS_TELECOM_ADPCM      Tag = 0x1979
	WAVE_FORMAT_LUCENT_SX8300P             Tag = 0x1C07
	WAVE_FORMAT_LUCENT_SX5363S             Tag = 0x1C0C
	WAVE_FORMAT_CUSEEME                    Tag = 0x1F03
	WAVE_FORMAT_NTCSOFT_ALF2CM_ACM         Tag = 0x1FC4
	WAVE_FORMAT_DVM                        Tag = 0x2000
	WAVE_FORMAT_DTS2                       Tag = 0x2001
	WAVE_FORMAT_MAKEAVIS                   Tag = 0x3313
	WAVE_FORMAT_DIVIO_MPEG4_AAC            Tag = 0x4143
	WAVE_FORMAT_NOKIA_ADAPTIVE_MULTIRATE   Tag = 0x4201
	WAVE_FORMAT_DIVIO_G726                 Tag = 0x4243
	WAVE_FORMAT_LEAD_SPEECH                Tag = 0x434C
	WAVE_FORMAT_LEAD_VORBIS                Tag = 0x564C
	WAVE_FORMAT_WAVPACK_AUDIO              Tag = 0x5756
	WAVE_FORMAT_OGG_VORBIS_MODE_1          Tag = 0x674F
	WAVE_FORMAT_OGG_VORBIS_MODE_2          Tag = 0x6750
	WAVE_FORMAT_OGG_VORBIS_MODE_3          Tag = 0x6751
	WAVE_FORMAT_OGG_VORBIS_MODE_1_PLUS     Tag = 0x676F
	WAVE_FORMAT_OGG_VORBIS_MODE_2_PLUS     Tag = 0x6770
	WAVE_FORMAT_OGG_VORBIS_MODE_3_PLUS     Tag = 0x6771
	WAVE_FORMAT_ALAC                       Tag = 0x6C61
	WAVE_FORMAT_3COM_NBX                   Tag = 0x7000
	WAVE_FORMAT_OPUS                       Tag = 0x704F
	WAVE_FORMAT_FAAD_AAC                   Tag = 0x706D
	WAVE_FORMAT_AMR_NB                     Tag = 0x7361
	WAVE_FORMAT_AMR_WB                     Tag = 0x7362
	WAVE_FORMAT_AMR_WP                     Tag = 0x7363
	WAVE_FORMAT_GSM_AMR_CBR                Tag = 0x7A21
	WAVE_FORMAT_GSM_AMR_VBR_SID            Tag = 0x7A22
	WAVE_FORMAT_COMVERSE_INFOSYS_G723_1    Tag = 0xA100
	WAVE_FORMAT_COMVERSE_INFOSYS_AVQSBC    Tag = 0xA101
	WAVE_FORMAT_COMVERSE_INFOSYS_SBC       Tag = 0xA102
	WAVE_FORMAT_SYMBOL_G729_A              Tag = 0xA103
	WAVE_FORMAT_VOICEAGE_AMR_WB            Tag = 0xA104
	WAVE_FORMAT_INGENIENT_G726             Tag = 0xA105
	WAVE_FORMAT_MPEG4_AAC                  Tag = 0xA106
	WAVE_FORMAT_ENCORE_G726                Tag = 0xA107
	WAVE_FORMAT_ZOLL_ASAO                  Tag = 0xA108
	WAVE_FORMAT_SPEEX_VOICE                Tag = 0xA109
	WAVE_FORMAT_VIANIX_MASC                Tag = 0xA10A
	WAVE_FORMAT_WM9_SPECTRUM_ANALYZER      Tag = 0xA10B
	WAVE_FORMAT_WMF_SPECTRUM_ANAYZER       Tag = 0xA10C
	WAVE_FORMAT_GSM_610                    Tag = 0xA10D
	WAVE_FORMAT_GSM_620                    Tag = 0xA10E
	WAVE_FORMAT_GSM_660                    Tag = 0xA10F
	WAVE_FORMAT_GSM_690                    Tag = 0xA110
	WAVE_FORMAT_GSM_ADAPTIVE_MULTIRATE_WB  Tag = 0xA111
	WAVE_FORMAT_POLYCOM_G722               Tag = 0xA112
	WAVE_FORMAT_POLYCOM_G728               Tag = 0xA113
	WAVE_FORMAT_POLYCOM_G729_A             Tag = 0xA114
	WAVE_FORMAT_POLYCOM_SIREN              Tag = 0xA115
	WAVE_FORMAT_GLOBAL_IP_ILBC             Tag = 0xA116
	WAVE_FORMAT_RADIOTIME_TIME_SHIFT_RADIO Tag = 0xA117
	WAVE_FORMAT_NICE_ACA                   Tag = 0xA118
	WAVE_FORMAT_NICE_ADPCM                 Tag = 0xA119
	WAVE_FORMAT_VOCORD_G721                Tag = 0xA11A
	WAVE_FORMAT_VOCORD_G726                Tag = 0xA11B
	WAVE_FORMAT_VOCORD_G722_1              Tag = 0xA11C
	WAVE_FORMAT_VOCORD_G728                Tag = 0xA11D
	WAVE_FORMAT_VOCORD_G729                Tag = 0xA11E
	WAVE_FORMAT_VOCORD_G729_A              Tag = 0xA11F
	WAVE_FORMAT_VOCORD_G723_1              Tag = 0xA120
	WAVE_FORMAT_VOCORD_LBC                 Tag = 0xA121
	WAVE_FORMAT_NICE_G728                  Tag = 0xA122
	WAVE_FORMAT_FRACE_TELECOM_G729         Tag = 0xA123
	WAVE_FORMAT_CODIAN                     Tag = 0xA124
	WAVE_FORMAT_FLAC                       Tag = 0xF1AC
)

// TagNames provides human-readable names for the known format tags and doubles
// as the set of tags the format decoder accepts.
var TagNames = map[Tag]string{
	WAVE_FORMAT_UNKNOWN:                    "Unknown",
	WAVE_FORMAT_PCM:                        "PCM",
	WAVE_FORMAT_ADPCM:                      "MS ADPCM",
	WAVE_FORMAT_IEEE_FLOAT:                 "IEEE Float",
	WAVE_FORMAT_VSELP:                      "VSELP",
	WAVE_FORMAT_IBM_CVSD:                   "IBM CVSD",
	WAVE_FORMAT_ALAW:                       "A-law",
	WAVE_FORMAT_MULAW:                      "Mu-law",
	WAVE_FORMAT_DTS:                        "DTS",
	WAVE_FORMAT_DRM:                        "DRM",
	WAVE_FORMAT_WMAVOICE9:                  "WMA Voice 9",
	WAVE_FORMAT_WMAVOICE10:                 "WMA Voice 10",
	WAVE_FORMAT_OKI_ADPCM:                  "OKI ADPCM",
	WAVE_FORMAT_DVI_ADPCM:                  "DVI/IMA ADPCM",
	WAVE_FORMAT_MEDIASPACE_ADPCM:           "Mediaspace ADPCM",
	WAVE_FORMAT_SIERRA_ADPCM:               "Sierra ADPCM",
	WAVE_FORMAT_G723_ADPCM:                 "G.723 ADPCM",
	WAVE_FORMAT_DIGISTD:                    "DIGISTD",
	WAVE_FORMAT_DIGIFIX:                    "DIGIFIX",
	WAVE_FORMAT_DIALOGIC_OKI_ADPCM:         "Dialogic OKI ADPCM",
	WAVE_FORMAT_MEDIAVISION_ADPCM:          "Media Vision ADPCM",
	WAVE_FORMAT_CU_CODEC:                   "HP CU codec",
	WAVE_FORMAT_HP_DYN_VOICE:               "HP DynVoice",
	WAVE_FORMAT_YAMAHA_ADPCM:               "Yamaha ADPCM",
	WAVE_FORMAT_SONARC:                     "Sonarc",
	WAVE_FORMAT_DSPGROUP_TRUESPEECH:        "DSP Group TrueSpeech",
	WAVE_FORMAT_ECHOSC1:                    "Echo Speech SC1",
	WAVE_FORMAT_AUDIOFILE_AF36:             "Audiofile AF36",
	WAVE_FORMAT_APTX:                       "APTX",
	WAVE_FORMAT_AUDIOFILE_AF10:             "Audiofile AF10",
	WAVE_FORMAT_PROSODY_1612:               "Prosody 1612",
	WAVE_FORMAT_LRC:                        "LRC",
	WAVE_FORMAT_DOLBY_AC2:                  "Dolby AC-2",
	WAVE_FORMAT_GSM610:                     "GSM 6.10",
	WAVE_FORMAT_MSNAUDIO:                   "MSN Audio",
	WAVE_FORMAT_ANTEX_ADPCME:               "Antex ADPCME",
	WAVE_FORMAT_CONTROL_RES_VQLPC:          "Control Resources VQLPC",
	WAVE_FORMAT_DIGIREAL:                   "DIGIREAL",
	WAVE_FORMAT_DIGIADPCM:                  "DIGIADPCM",
	WAVE_FORMAT_CONTROL_RES_CR10:           "Control Resources CR10",
	WAVE_FORMAT_NMS_VBXADPCM:               "NMS VBXADPCM",
	WAVE_FORMAT_CS_IMAADPCM:                "Crystal Semiconductor IMA ADPCM",
	WAVE_FORMAT_ECHOSC3:                    "Echo Speech SC3",
	WAVE_FORMAT_ROCKWELL_ADPCM:             "Rockwell ADPCM",
	WAVE_FORMAT_ROCKWELL_DIGITALK:          "Rockwell Digitalk",
	WAVE_FORMAT_XEBEC:                      "Xebec",
	WAVE_FORMAT_G721_ADPCM:                 "G.721 ADPCM",
	WAVE_FORMAT_G728_CELP:                  "G.728 CELP",
	WAVE_FORMAT_MSG723:                     "MS G.723",
	WAVE_FORMAT_INTEL_G723_1:               "Intel G.723.1",
	WAVE_FORMAT_INTEL_G729:                 "Intel G.729",
	WAVE_FORMAT_SHARP_G726:                 "Sharp G.726",
	WAVE_FORMAT_MPEG:                       "MPEG",
	WAVE_FORMAT_RT24:                       "RT24",
	WAVE_FORMAT_PAC:                        "PAC",
	WAVE_FORMAT_MPEGLAYER3:                 "MPEG Layer 3",
	WAVE_FORMAT_LUCENT_G723:                "Lucent G.723",
	WAVE_FORMAT_CIRRUS:                     "Cirrus Logic",
	WAVE_FORMAT_ESPCM:                      "ESS PCM",
	WAVE_FORMAT_VOXWARE:                    "Voxware",
	WAVE_FORMAT_CANOPUS_ATRAC:              "Canopus ATRAC",
	WAVE_FORMAT_G726_ADPCM:                 "G.726 ADPCM",
	WAVE_FORMAT_G722_ADPCM:                 "G.722 ADPCM",
	WAVE_FORMAT_DSAT:                       "DSAT",
	WAVE_FORMAT_DSAT_DISPLAY:               "DSAT Display",
	WAVE_FORMAT_VOXWARE_BYTE_ALIGNED:       "Voxware byte aligned",
	WAVE_FORMAT_VOXWARE_AC8:                "Voxware AC8",
	WAVE_FORMAT_VOXWARE_AC10:               "Voxware AC10",
	WAVE_FORMAT_VOXWARE_AC16:               "Voxware AC16",
	WAVE_FORMAT_VOXWARE_AC20:               "Voxware AC20",
	WAVE_FORMAT_VOXWARE_RT24:               "Voxware RT24",
	WAVE_FORMAT_VOXWARE_RT29:               "Voxware RT29",
	WAVE_FORMAT_VOXWARE_RT29HW:             "Voxware RT29HW",
	WAVE_FORMAT_VOXWARE_VR12:               "Voxware VR12",
	WAVE_FORMAT_VOXWARE_VR18:               "Voxware VR18",
	WAVE_FORMAT_VOXWARE_TQ40:               "Voxware TQ40",
	WAVE_FORMAT_VOXWARE_SC3:                "Voxware SC3",
	WAVE_FORMAT_VOXWARE_SC3_1:              "Voxware SC3.1",
	WAVE_FORMAT_SOFTSOUND:                  "Softsound",
	WAVE_FORMAT_VOXWARE_TQ60:               "Voxware TQ60",
	WAVE_FORMAT_MSRT24:                     "MS RT24",
	WAVE_FORMAT_G729A:                      "G.729A",
	WAVE_FORMAT_MVI_MVI2:                   "Motion Pixels MVI2",
	WAVE_FORMAT_DF_G726:                    "DataFusion G.726",
	WAVE_FORMAT_DF_GSM610:                  "DataFusion GSM 6.10",
	WAVE_FORMAT_ISIAUDIO:                   "ISIAudio",
	WAVE_FORMAT_ONLIVE:                     "OnLive",
	WAVE_FORMAT_MULTITUDE_FT_SX20:          "Multitude FT SX20",
	WAVE_FORMAT_INFOCOM_ITS_G721_ADPCM:     "Infocom ITS G.721 ADPCM",
	WAVE_FORMAT_CONVEDIA_G729:              "Convedia G.729",
	WAVE_FORMAT_CONGRUENCY:                 "Congruency",
	WAVE_FORMAT_SBC24:                      "SBC24",
	WAVE_FORMAT_DOLBY_AC3_SPDIF:            "Dolby AC-3 S/PDIF",
	WAVE_FORMAT_MEDIASONIC_G723:            "MediaSonic G.723",
	WAVE_FORMAT_PROSODY_8KBPS:              "Prosody 8kbps",
	WAVE_FORMAT_ZYXEL_ADPCM:                "ZyXEL ADPCM",
	WAVE_FORMAT_PHILIPS_LPCBB:              "Philips LPCBB",
	WAVE_FORMAT_PACKED:                     "Packed",
	WAVE_FORMAT_MALDEN_PHONYTALK:           "Malden PhonyTalk",
	WAVE_FORMAT_RACAL_RECORDER_GSM:         "Racal Recorder GSM",
	WAVE_FORMAT_RACAL_RECORDER_G720_A:      "Racal Recorder G.720.a",
	WAVE_FORMAT_RACAL_RECORDER_G723_1:      "Racal Recorder G.723.1",
	WAVE_FORMAT_RACAL_RECORDER_TETRA_ACELP: "Racal Recorder TETRA ACELP",
	WAVE_FORMAT_NEC_AAC:                    "NEC AAC",
	WAVE_FORMAT_RAW_AAC1:                   "Raw AAC",
	WAVE_FORMAT_RHETOREX_ADPCM:             "Rhetorex ADPCM",
	WAVE_FORMAT_IRAT:                       "IRAT",
	WAVE_FORMAT_VIVO_G723:                  "Vivo G.723",
	WAVE_FORMAT_VIVO_SIREN:                 "Vivo Siren",
	WAVE_FORMAT_PHILIPS_CELP:               "Philips CELP",
	WAVE_FORMAT_PHILIPS_GRUNDIG:            "Philips Grundig",
	WAVE_FORMAT_DIGITAL_G723:               "Digital G.723",
	WAVE_FORMAT_SANYO_LD_ADPCM:             "Sanyo LD ADPCM",
	WAVE_FORMAT_SIPROLAB_ACEPLNET:          "Sipro Lab ACELP.net",
	WAVE_FORMAT_SIPROLAB_ACELP4800:         "Sipro Lab ACELP 4800",
	WAVE_FORMAT_SIPROLAB_ACELP8V3:          "Sipro Lab ACELP 8V3",
	WAVE_FORMAT_SIPROLAB_G729:              "Sipro Lab G.729",
	WAVE_FORMAT_SIPROLAB_G729A:             "Sipro Lab G.729A",
	WAVE_FORMAT_SIPROLAB_KELVIN:            "Sipro Lab Kelvin",
	WAVE_FORMAT_VOICEAGE_AMR:               "VoiceAge AMR",
	WAVE_FORMAT_G726ADPCM:                  "Dictaphone G.726 ADPCM",
	WAVE_FORMAT_DICTAPHONE_CELP68:          "Dictaphone CELP68",
	WAVE_FORMAT_DICTAPHONE_CELP54:          "Dictaphone CELP54",
	WAVE_FORMAT_QUALCOMM_PUREVOICE:         "Qualcomm PureVoice",
	WAVE_FORMAT_QUALCOMM_HALFRATE:          "Qualcomm HalfRate",
	WAVE_FORMAT_TUBGSM:                     "TUB GSM",
	WAVE_FORMAT_MSAUDIO1:                   "MS Audio 1",
	WAVE_FORMAT_WMAUDIO2:                   "WMA 2",
	WAVE_FORMAT_WMAUDIO3:                   "WMA 3",
	WAVE_FORMAT_WMAUDIO_LOSSLESS:           "WMA Lossless",
	WAVE_FORMAT_WMASPDIF:                   "WMA S/PDIF",
	WAVE_FORMAT_UNISYS_NAP_ADPCM:           "Unisys NAP ADPCM",
	WAVE_FORMAT_UNISYS_NAP_ULAW:            "Unisys NAP Mu-law",
	WAVE_FORMAT_UNISYS_NAP_ALAW:            "Unisys NAP A-law",
	WAVE_FORMAT_UNISYS_NAP_16K:             "Unisys NAP 16K",
	WAVE_FORMAT_SYCOM_ACM_SYC008:           "SyCom ACM SYC008",
	WAVE_FORMAT_SYCOM_ACM_SYC701_G726L:     "SyCom ACM SYC701 G726L",
	WAVE_FORMAT_SYCOM_ACM_SYC701_CELP54:    "SyCom ACM SYC701 CELP54",
	WAVE_FORMAT_SYCOM_ACM_SYC701_CELP68:    "SyCom ACM SYC701 CELP68",
	WAVE_FORMAT_KNOWLEDGE_ADVENTURE_ADPCM:  "Knowledge Adventure ADPCM",
	WAVE_FORMAT_FRAUNHOFER_IIS_MPEG2_AAC:   "Fraunhofer IIS MPEG-2 AAC",
	WAVE_FORMAT_DTS_DS:                     "DTS DS",
	WAVE_FORMAT_CREATIVE_ADPCM:             "Creative ADPCM",
	WAVE_FORMAT_CREATIVE_FASTSPEECH8:       "Creative FastSpeech 8",
	WAVE_FORMAT_CREATIVE_FASTSPEECH10:      "Creative FastSpeech 10",
	WAVE_FORMAT_UHER_ADPCM:                 "UHER ADPCM",
	WAVE_FORMAT_ULEAD_DV_AUDIO:             "Ulead DV Audio",
	WAVE_FORMAT_ULEAD_DV_AUDIO_1:           "Ulead DV Audio 1",
	WAVE_FORMAT_QUARTERDECK:                "Quarterdeck",
	WAVE_FORMAT_ILINK_VC:                   "I-link VC",
	WAVE_FORMAT_RAW_SPORT:                  "Aureal Raw Sport",
	WAVE_FORMAT_ESST_AC3:                   "ESST AC-3",
	WAVE_FORMAT_GENERIC_PASSTHRU:           "Generic passthrough",
	WAVE_FORMAT_IPI_HSX:                    "IPI HSX",
	WAVE_FORMAT_IPI_RPELP:                  "IPI RPELP",
	WAVE_FORMAT_CS2:                        "Consistent Software 2",
	WAVE_FORMAT_SONY_SCX:                   "Sony SCX",
	WAVE_FORMAT_SONY_SCY:                   "Sony SCY",
	WAVE_FORMAT_SONY_ATRAC3:                "Sony ATRAC3",
	WAVE_FORMAT_SONY_SPC:                   "Sony SPC",
	WAVE_FORMAT_TELUM_AUDIO:                "Telum Audio",
	WAVE_FORMAT_TELUM_IA_AUDIO:             "Telum IA Audio",
	WAVE_FORMAT_NORCOM_VOICE_SYSTEMS_ADPCM: "Norcom Voice Systems ADPCM",
	WAVE_FORMAT_FM_TOWNS_SND:               "FM Towns SND",
	WAVE_FORMAT_MICRONAS:                   "Micronas",
	WAVE_FORMAT_MICRONAS_CELP833:           "Micronas CELP833",
	WAVE_FORMAT_BTV_DIGITAL:                "Brooktree digital",
	WAVE_FORMAT_INTEL_MUSIC_CODER:          "Intel Music Coder",
	WAVE_FORMAT_INDEO_AUDIO:                "Indeo Audio",
	WAVE_FORMAT_QDESIGN_MUSIC:              "QDesign Music",
	WAVE_FORMAT_ON2_VP7_AUDIO:              "On2 VP7 Audio",
	WAVE_FORMAT_ON2_VP6_AUDIO:              "On2 VP6 Audio",
	WAVE_FORMAT_VME_VMPCM:                  "VME VMPCM",
	WAVE_FORMAT_TPC:                        "TPC",
	WAVE_FORMAT_LIGHTWAVE_LOSSLESS:         "Lightwave Lossless",
	WAVE_FORMAT_OLIGSM:                     "Olivetti GSM",
	WAVE_FORMAT_OLIADPCM:                   "Olivetti ADPCM",
	WAVE_FORMAT_OLICELP:                    "Olivetti CELP",
	WAVE_FORMAT_OLISBC:                     "Olivetti SBC",
	WAVE_FORMAT_OLIOPR:                     "Olivetti OPR",
	WAVE_FORMAT_LH_CODEC:                   "Lernout & Hauspie",
	WAVE_FORMAT_LH_CODEC_CELP:              "Lernout & Hauspie CELP",
	WAVE_FORMAT_LH_CODEC_SBC8:              "Lernout & Hauspie SBC8",
	WAVE_FORMAT_LH_CODEC_SBC12:             "Lernout & Hauspie SBC12",
	WAVE_FORMAT_LH_CODEC_SBC16:             "Lernout & Hauspie SBC16",
	WAVE_FORMAT_NORRIS:                     "Norris",
	WAVE_FORMAT_ISIAUDIO_2:                 "ISIAudio 2",
	WAVE_FORMAT_SOUNDSPACE_MUSICOMPRESS:    "SoundSpace MusiCompress",
	WAVE_FORMAT_MPEG_ADTS_AAC:              "MPEG ADTS AAC",
	WAVE_FORMAT_MPEG_RAW_AAC:               "MPEG raw AAC",
	WAVE_FORMAT_MPEG_LOAS:                  "MPEG-4 LOAS/LATM",
	WAVE_FORMAT_NOKIA_MPEG_ADTS_AAC:        "Nokia MPEG ADTS AAC",
	WAVE_FORMAT_NOKIA_MPEG_RAW_AAC:         "Nokia MPEG raw AAC",
	WAVE_FORMAT_VODAFONE_MPEG_ADTS_AAC:     "Vodafone MPEG ADTS AAC",
	WAVE_FORMAT_VODAFONE_MPEG_RAW_AAC:      "Vodafone MPEG raw AAC",
	WAVE_FORMAT_MPEG_HEAAC:                 "MPEG HE-AAC",
	WAVE_FORMAT_VOXWARE_RT24_SPEECH:        "Voxware RT24 speech",
	WAVE_FORMAT_SONICFOUNDRY_LOSSLESS:      "Sonic Foundry Lossless",
	WAVE_FORMAT_INNINGS_TELECOM_ADPCM:      "Innings Telecom ADPCM",
	WAVE_FORMAT_LUCENT_SX8300P:             "Lucent SX8300P",
	WAVE_FORMAT_LUCENT_SX5363S:             "Lucent SX5363S",
	WAVE_FORMAT_CUSEEME:                    "CUSeeMe",
	WAVE_FORMAT_NTCSOFT_ALF2CM_ACM:         "NTCSoft ALF2CM ACM",
	WAVE_FORMAT_DVM:                        "FAST Multimedia DVM",
	WAVE_FORMAT_DTS2:                       "DTS 2",
	WAVE_FORMAT_MAKEAVIS:                   "Make AVIs",
	WAVE_FORMAT_DIVIO_MPEG4_AAC:            "Divio MPEG-4 AAC",
	WAVE_FORMAT_NOKIA_ADAPTIVE_MULTIRATE:   "Nokia Adaptive Multirate",
	WAVE_FORMAT_DIVIO_G726:                 "Divio G.726",
	WAVE_FORMAT_LEAD_SPEECH:                "LEAD Speech",
	WAVE_FORMAT_LEAD_VORBIS:                "LEAD Vorbis",
	WAVE_FORMAT_WAVPACK_AUDIO:              "WavPack",
	WAVE_FORMAT_OGG_VORBIS_MODE_1:          "Ogg Vorbis mode 1",
	WAVE_FORMAT_OGG_VORBIS_MODE_2:          "Ogg Vorbis mode 2",
	WAVE_FORMAT_OGG_VORBIS_MODE_3:          "Ogg Vorbis mode 3",
	WAVE_FORMAT_OGG_VORBIS_MODE_1_PLUS:     "Ogg Vorbis mode 1+",
	WAVE_FORMAT_OGG_VORBIS_MODE_2_PLUS:     "Ogg Vorbis mode 2+",
	WAVE_FORMAT_OGG_VORBIS_MODE_3_PLUS:     "Ogg Vorbis mode 3+",
	WAVE_FORMAT_ALAC:                       "Apple Lossless",
	WAVE_FORMAT_3COM_NBX:                   "3COM NBX",
	WAVE_FORMAT_OPUS:                       "Opus",
	WAVE_FORMAT_FAAD_AAC:                   "FAAD AAC",
	WAVE_FORMAT_AMR_NB:                     "AMR Narrowband",
	WAVE_FORMAT_AMR_WB:                     "AMR Wideband",
	WAVE_FORMAT_AMR_WP:                     "AMR Wideband Plus",
	WAVE_FORMAT_GSM_AMR_CBR:                "GSM-AMR CBR",
	WAVE_FORMAT_GSM_AMR_VBR_SID:            "GSM-AMR VBR SID",
	WAVE_FORMAT_COMVERSE_INFOSYS_G723_1:    "Comverse Infosys G.723.1",
	WAVE_FORMAT_COMVERSE_INFOSYS_AVQSBC:    "Comverse Infosys AVQSBC",
	WAVE_FORMAT_COMVERSE_INFOSYS_SBC:       "Comverse Infosys SBC",
	WAVE_FORMAT_SYMBOL_G729_A:              "Symbol G.729A",
	WAVE_FORMAT_VOICEAGE_AMR_WB:            "VoiceAge AMR Wideband",
	WAVE_FORMAT_INGENIENT_G726:             "Ingenient G.726",
	WAVE_FORMAT_MPEG4_AAC:                  "MPEG-4 AAC",
	WAVE_FORMAT_ENCORE_G726:                "Encore G.726",
	WAVE_FORMAT_ZOLL_ASAO:                  "ZOLL ASAO",
	WAVE_FORMAT_SPEEX_VOICE:                "Speex Voice",
	WAVE_FORMAT_VIANIX_MASC:                "Vianix MASC",
	WAVE_FORMAT_WM9_SPECTRUM_ANALYZER:      "WM9 spectrum analyzer",
	WAVE_FORMAT_WMF_SPECTRUM_ANAYZER:       "WMF spectrum analyzer",
	WAVE_FORMAT_GSM_610:                    "GSM 610",
	WAVE_FORMAT_GSM_620:                    "GSM 620",
	WAVE_FORMAT_GSM_660:                    "GSM 660",
	WAVE_FORMAT_GSM_690:                    "GSM 690",
	WAVE_FORMAT_GSM_ADAPTIVE_MULTIRATE_WB:  "GSM Adaptive Multirate Wideband",
	WAVE_FORMAT_POLYCOM_G722:               "Polycom G.722",
	WAVE_FORMAT_POLYCOM_G728:               "Polycom G.728",
	WAVE_FORMAT_POLYCOM_G729_A:             "Polycom G.729A",
	WAVE_FORMAT_POLYCOM_SIREN:              "Polycom Siren",
	WAVE_FORMAT_GLOBAL_IP_ILBC:             "Global IP iLBC",
	WAVE_FORMAT_RADIOTIME_TIME_SHIFT_RADIO: "RadioTime Time Shift Radio",
	WAVE_FORMAT_NICE_ACA:                   "Nice ACA",
	WAVE_FORMAT_NICE_ADPCM:                 "Nice ADPCM",
	WAVE_FORMAT_VOCORD_G721:                "Vocord G.721",
	WAVE_FORMAT_VOCORD_G726:                "Vocord G.726",
	WAVE_FORMAT_VOCORD_G722_1:              "Vocord G.722.1",
	WAVE_FORMAT_VOCORD_G728:                "Vocord G.728",
	WAVE_FORMAT_VOCORD_G729:                "Vocord G.729",
	WAVE_FORMAT_VOCORD_G729_A:              "Vocord G.729A",
	WAVE_FORMAT_VOCORD_G723_1:              "Vocord G.723.1",
	WAVE_FORMAT_VOCORD_LBC:                 "Vocord LBC",
	WAVE_FORMAT_NICE_G728:                  "Nice G.728",
	WAVE_FORMAT_FRACE_TELECOM_G729:         "France Telecom G.729",
	WAVE_FORMAT_CODIAN:                     "CODIAN",
	WAVE_FORMAT_FLAC:                       "FLAC",
}

// Manufacturer identifies the manufacturer of the device driver for a device.
// The values correspond to the MM_* manufacturer constants in mmreg.h.
type Manufacturer uint16

const (
	MM_MICROSOFT        Manufacturer = 1
	MM_CREATIVE         Manufacturer = 2
	MM_MEDIAVISION      Manufacturer = 3
	MM_FUJITSU          Manufacturer = 4
	MM_ARTISOFT         Manufacturer = 20
	MM_TURTLE_BEACH     Manufacturer = 21
	MM_IBM              Manufacturer = 22
	MM_VOCALTEC         Manufacturer = 23
	MM_ROLAND           Manufacturer = 24
	MM_DSP_SOLUTIONS    Manufacturer = 25
	MM_NEC              Manufacturer = 26
	MM_ATI              Manufacturer = 27
	MM_WANGLABS         Manufacturer = 28
	MM_TANDY            Manufacturer = 29
	MM_VOYETRA          Manufacturer = 30
	MM_ANTEX            Manufacturer = 31
	MM_ICL_PS           Manufacturer = 32
	MM_INTEL            Manufacturer = 33
	MM_GRAVIS           Manufacturer = 34
	MM_VAL              Manufacturer = 35
	MM_INTERACTIVE      Manufacturer = 36
	MM_YAMAHA           Manufacturer = 37
	MM_EVEREX           Manufacturer = 38
	MM_ECHO             Manufacturer = 39
	MM_SIERRA           Manufacturer = 40
	MM_CAT              Manufacturer = 41
	MM_APPS             Manufacturer = 42
	MM_DSP_GROUP        Manufacturer = 43
	MM_MELABS           Manufacturer = 44
	MM_COMPUTER_FRIENDS Manufacturer = 45
	MM_ESS              Manufacturer = 46
	MM_AUDIOFILE        Manufacturer = 47
	MM_MOTOROLA         Manufacturer = 48
	MM_CANOPUS          Manufacturer = 49
	MM_EPSON            Manufacturer = 50
	MM_TRUEVISION       Manufacturer = 51
	MM_AZTECH           Manufacturer = 52
	MM_VIDEOLOGIC       Manufacturer = 53
	MM_SCALACS          Manufacturer = 54
	MM_KORG             Manufacturer = 55
	MM_APT              Manufacturer = 56
	MM_ICS              Manufacturer = 57
	MM_ITERATEDSYS      Manufacturer = 58
	MM_METHEUS          Manufacturer = 59
	MM_LOGITECH         Manufacturer = 60
	MM_WINNOV           Manufacturer = 61
	MM_NCR              Manufacturer = 62
	MM_EXAN             Manufacturer = 63
	MM_AST              Manufacturer = 64
	MM_WILLOWPOND       Manufacturer = 65
	MM_SONICFOUNDRY     Manufacturer = 66
	MM_VITEC            Manufacturer = 67
	MM_MOSCOM           Manufacturer = 68
	MM_SILICONSOFT      Manufacturer = 69
	MM_SUPERMAC         Manufacturer = 73
	MM_AUDIOPT          Manufacturer = 74
	MM_SPEECHCOMP       Manufacturer = 76
	MM_DOLBY            Manufacturer = 78
	MM_OKI              Manufacturer = 79
	MM_AURAVISION       Manufacturer = 80
	MM_OLIVETTI         Manufacturer = 81
	MM_IOMAGIC          Manufacturer = 82
	MM_MATSUSHITA       Manufacturer = 83
	MM_CONTROLRES       Manufacturer = 84
	MM_XEBEC            Manufacturer = 85
	MM_NEWMEDIA         Manufacturer = 86
	MM_NMS              Manufacturer = 87
	MM_LYRRUS           Manufacturer = 88
	MM_COMPUSIC         Manufacturer = 89
	MM_OPTI             Manufacturer = 90
	MM_DIALOGIC         Manufacturer = 93
)

// ManufacturerNames provides company names for the known manufacturer identifiers.
var ManufacturerNames = map[Manufacturer]string{
	MM_MICROSOFT:        "Microsoft Corporation",
	MM_CREATIVE:         "Creative Labs, Inc.",
	MM_MEDIAVISION:      "Media Vision, Inc.",
	MM_FUJITSU:          "Fujitsu, Ltd.",
	MM_ARTISOFT:         "Artisoft, Inc.",
	MM_TURTLE_BEACH:     "Turtle Beach Systems",
	MM_IBM:              "International Business Machines",
	MM_VOCALTEC:         "VocalTec, Inc.",
	MM_ROLAND:           "Roland Corporation",
	MM_DSP_SOLUTIONS:    "DSP Solutions, Inc.",
	MM_NEC:              "NEC Corporation",
	MM_ATI:              "ATI Technologies, Inc.",
	MM_WANGLABS:         "Wang Laboratories",
	MM_TANDY:            "Tandy Corporation",
	MM_VOYETRA:          "Voyetra Technologies",
	MM_ANTEX:            "Antex Electronics Corporation",
	MM_ICL_PS:           "ICL Personal Systems",
	MM_INTEL:            "Intel Corporation",
	MM_GRAVIS:           "Advanced Gravis Computer Technology, Ltd.",
	MM_VAL:              "Video Associates Labs, Inc.",
	MM_INTERACTIVE:      "InterActive, Inc.",
	MM_YAMAHA:           "Yamaha Corporation of America",
	MM_EVEREX:           "Everex Systems, Inc.",
	MM_ECHO:             "Echo Speech Corporation",
	MM_SIERRA:           "Sierra Semiconductor Corporation",
	MM_CAT:              "Computer Aided Technology, Inc.",
	MM_APPS:             "APPS Software",
	MM_DSP_GROUP:        "DSP Group, Inc.",
	MM_MELABS:           "microEngineering Labs",
	MM_COMPUTER_FRIENDS: "Computer Friends, Inc.",
	MM_ESS:              "ESS Technology, Inc.",
	MM_AUDIOFILE:        "Audio, Inc.",
	MM_MOTOROLA:         "Motorola, Inc.",
	MM_CANOPUS:          "Canopus, Co., Ltd.",
	MM_EPSON:            "Seiko Epson Corporation",
	MM_TRUEVISION:       "Truevision, Inc.",
	MM_AZTECH:           "Aztech Labs, Inc.",
	MM_VIDEOLOGIC:       "VideoLogic, Inc.",
	MM_SCALACS:          "SCALACS",
	MM_KORG:             "Korg, Inc.",
	MM_APT:              "Audio Processing Technology",
	MM_ICS:              "Integrated Circuit Systems, Inc.",
	MM_ITERATEDSYS:      "Iterated Systems, Inc.",
	MM_METHEUS:          "Metheus Corporation",
	MM_LOGITECH:         "Logitech, Inc.",
	MM_WINNOV:           "Winnov, LP",
	MM_NCR:              "NCR Corporation",
	MM_EXAN:             "EXAN, Ltd.",
	MM_AST:              "AST Research, Inc.",
	MM_WILLOWPOND:       "Willow Pond Corporation",
	MM_SONICFOUNDRY:     "Sonic Foundry",
	MM_VITEC:            "Visual Information Technologies, Inc.",
	MM_MOSCOM:           "MOSCOM Corporation",
	MM_SILICONSOFT:      "Silicon Software, Inc.",
	MM_SUPERMAC:         "Supermac Technology, Inc.",
	MM_AUDIOPT:          "Audio Processing Technology",
	MM_SPEECHCOMP:       "Speech Compression",
	MM_DOLBY:            "Dolby Laboratories, Inc.",
	MM_OKI:              "OKI",
	MM_AURAVISION:       "Auravision Corporation",
	MM_OLIVETTI:         "Ing. C. Olivetti & C., S.p.A.",
	MM_IOMAGIC:          "I/O Magic Corporation",
	MM_MATSUSHITA:       "Matsushita Electric Corporation of America",
	MM_CONTROLRES:       "Control Resources Corporation",
	MM_XEBEC:            "Xebec Multimedia Solutions Limited",
	MM_NEWMEDIA:         "New Media Corporation",
	MM_NMS:              "Natural MicroSystems Corporation",
	MM_LYRRUS:           "Lyrrus, Inc.",
	MM_COMPUSIC:         "Compusic",
	MM_OPTI:             "OPTi, Inc.",
	MM_DIALOGIC:         "Dialogic Corporation",
}

// Product identifies a device product. The mmreg.h header reuses several
// identifiers across vendors, so only the curated Microsoft subset is named
// here; identifiers outside ProductNames surface as unrecognized rather than
// failing a capability query.
type Product uint16

const (
	MM_MIDI_MAPPER                 Product = 1
	MM_WAVE_MAPPER                 Product = 2
	MM_SNDBLST_MIDIOUT             Product = 3
	MM_SNDBLST_MIDIIN              Product = 4
	MM_SNDBLST_SYNTH               Product = 5
	MM_SNDBLST_WAVEOUT             Product = 6
	MM_SNDBLST_WAVEIN              Product = 7
	MM_ADLIB                       Product = 9
	MM_MPU401_MIDIOUT              Product = 10
	MM_MPU401_MIDIIN               Product = 11
	MM_PC_JOYSTICK                 Product = 12
	MM_PCSPEAKER_WAVEOUT           Product = 13
	MM_MSFT_WSS_WAVEIN             Product = 14
	MM_MSFT_WSS_WAVEOUT            Product = 15
	MM_MSFT_WSS_FMSYNTH_STEREO     Product = 16
	MM_MSFT_WSS_MIXER              Product = 17
	MM_MSFT_WSS_OEM_WAVEIN         Product = 18
	MM_MSFT_WSS_OEM_WAVEOUT        Product = 19
	MM_MSFT_WSS_OEM_FMSYNTH_STEREO Product = 20
	MM_MSFT_WSS_AUX                Product = 21
	MM_MSFT_WSS_OEM_AUX            Product = 22
	MM_MSFT_GENERIC_WAVEIN         Product = 23
	MM_MSFT_GENERIC_WAVEOUT        Product = 24
	MM_MSFT_GENERIC_MIDIIN         Product = 25
	MM_MSFT_GENERIC_MIDIOUT        Product = 26
	MM_MSFT_GENERIC_MIDISYNTH      Product = 27
	MM_MSFT_GENERIC_AUX_LINE       Product = 28
	MM_MSFT_GENERIC_AUX_MIC        Product = 29
	MM_MSFT_GENERIC_AUX_CD         Product = 30
	MM_MSFT_WSS_OEM_MIXER          Product = 31
	MM_MSFT_MSACM                  Product = 32
	MM_MSFT_ACM_MSADPCM            Product = 33
	MM_MSFT_ACM_IMAADPCM           Product = 34
	MM_MSFT_ACM_MSFILTER           Product = 35
	MM_MSFT_ACM_GSM610             Product = 36
	MM_MSFT_ACM_G711               Product = 37
	MM_MSFT_ACM_PCM                Product = 38
)

// ProductNames provides names for the curated product identifiers.
var ProductNames = map[Product]string{
	MM_MIDI_MAPPER:                 "MIDI mapper",
	MM_WAVE_MAPPER:                 "Wave mapper",
	MM_SNDBLST_MIDIOUT:             "Sound Blaster MIDI output port",
	MM_SNDBLST_MIDIIN:              "Sound Blaster MIDI input port",
	MM_SNDBLST_SYNTH:               "Sound Blaster internal synthesizer",
	MM_SNDBLST_WAVEOUT:             "Sound Blaster waveform output",
	MM_SNDBLST_WAVEIN:              "Sound Blaster waveform input",
	MM_ADLIB:                       "Adlib-compatible synthesizer",
	MM_MPU401_MIDIOUT:              "MPU 401-compatible MIDI output port",
	MM_MPU401_MIDIIN:               "MPU 401-compatible MIDI input port",
	MM_PC_JOYSTICK:                 "Joystick adapter",
	MM_PCSPEAKER_WAVEOUT:           "PC speaker waveform output",
	MM_MSFT_WSS_WAVEIN:             "MS audio board waveform input",
	MM_MSFT_WSS_WAVEOUT:            "MS audio board waveform output",
	MM_MSFT_WSS_FMSYNTH_STEREO:     "MS audio board stereo FM synthesizer",
	MM_MSFT_WSS_MIXER:              "MS audio board mixer driver",
	MM_MSFT_WSS_OEM_WAVEIN:         "MS OEM audio board waveform input",
	MM_MSFT_WSS_OEM_WAVEOUT:        "MS OEM audio board waveform output",
	MM_MSFT_WSS_OEM_FMSYNTH_STEREO: "MS OEM audio board stereo FM synthesizer",
	MM_MSFT_WSS_AUX:                "MS audio board aux port",
	MM_MSFT_WSS_OEM_AUX:            "MS OEM audio aux port",
	MM_MSFT_GENERIC_WAVEIN:         "MS vanilla driver waveform input",
	MM_MSFT_GENERIC_WAVEOUT:        "MS vanilla driver waveform output",
	MM_MSFT_GENERIC_MIDIIN:         "MS vanilla driver MIDI in",
	MM_MSFT_GENERIC_MIDIOUT:        "MS vanilla driver MIDI external out",
	MM_MSFT_GENERIC_MIDISYNTH:      "MS vanilla driver MIDI synthesizer",
	MM_MSFT_GENERIC_AUX_LINE:       "MS vanilla driver aux (line in)",
	MM_MSFT_GENERIC_AUX_MIC:        "MS vanilla driver aux (mic)",
	MM_MSFT_GENERIC_AUX_CD:         "MS vanilla driver aux (CD)",
	MM_MSFT_WSS_OEM_MIXER:          "MS OEM audio board mixer driver",
	MM_MSFT_MSACM:                  "MS audio compression manager",
	MM_MSFT_ACM_MSADPCM:            "MS ADPCM codec",
	MM_MSFT_ACM_IMAADPCM:           "IMA ADPCM codec",
	MM_MSFT_ACM_MSFILTER:           "MS filter",
	MM_MSFT_ACM_GSM610:             "GSM 610 codec",
	MM_MSFT_ACM_G711:               "G.711 codec",
	MM_MSFT_ACM_PCM:                "PCM converter",
}
