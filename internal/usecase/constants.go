package usecase

// Save failure reasons reported to MetricsRecorder.
const (
	ReasonInvalidAsset = "invalid_asset"
	ReasonInvalidList  = "invalid_list"
	ReasonEmptyList    = "empty_list"
	ReasonDuplicateIDs = "duplicate_ids"
	ReasonRepository   = "repository"
)
