package config

// ModelName selects a Whisper model variant.
type ModelName string

const (
	ModelTinyEn   ModelName = "tiny.en"
	ModelBaseEn   ModelName = "base.en"
	ModelSmallEn  ModelName = "small.en"
	ModelMediumEn ModelName = "medium.en"
	ModelTiny     ModelName = "tiny"
	ModelBase     ModelName = "base"
	ModelSmall    ModelName = "small"
	ModelMedium   ModelName = "medium"
	ModelLargeV2  ModelName = "large-v2"
	ModelLargeV3  ModelName = "large-v3"
)

var knownModels = []ModelName{
	ModelTinyEn, ModelBaseEn, ModelSmallEn, ModelMediumEn,
	ModelTiny, ModelBase, ModelSmall, ModelMedium,
	ModelLargeV2, ModelLargeV3,
}

func (m ModelName) Valid() bool {
	for _, k := range knownModels {
		if m == k {
			return true
		}
	}
	return false
}

func (m ModelName) String() string { return string(m) }

func modelNames() []string {
	names := make([]string, len(knownModels))
	for i, m := range knownModels {
		names[i] = string(m)
	}
	return names
}
