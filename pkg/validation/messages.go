package validation

// Diagnostic wording lives here so it changes in one place. Downstream
// tooling matches on these strings; treat every edit as a breaking change.
const (
	msgComponentCodeMissing  = "Component code is required"
	msgComponentTitleMissing = "Component title is required"
	msgComponentTagsInvalid  = "Component tags must be an array"
	msgComponentPropsMissing = "Component properties are required"

	msgTypeMissing        = "Field type is required"
	msgDescriptionMissing = "Field description is missing"
	msgNameMissing        = "Field name is required"
	msgDefaultMissing     = "Default value is missing"
	msgRulesMissing       = "Validation rules are missing"
	msgRequiredNotBoolean = "Required flag must be set to true or false"

	msgContentMinRequired = "Minimum content length is missing for a required field"
	msgContentMaxMissing  = "Maximum content length is missing"

	msgTextContentMissing = "Text fields must define content rules"

	// Arrays report one string per bound whether it is absent or out of
	// range. Both halves of each check share the wording on purpose.
	msgArrayContentMissing   = "Array fields must define content rules"
	msgArrayContentMin       = "Array fields must define a minimum length of at least 1"
	msgArrayContentMax       = "Array fields must define a maximum length of at least 1"
	msgArrayItemsMissing     = "Array fields must define an items definition"
	msgArrayItemsTypeMissing = "Array items must define a field type"
	msgArrayItemsPropsEmpty  = "Array items must define a properties map"

	msgLinkDefaultObject = "Link fields must define a default object"
	msgLinkDefaultURL    = "Link fields must define a default url"
	msgLinkDefaultText   = "Link fields must define a default text"

	// The button wording says "Image fields". It always has; scripts grep
	// for it.
	msgButtonDefaultObject = "Image fields must define a default object"
	msgButtonDefaultURL    = "Image fields must define a default url"
	msgButtonDefaultLabel  = "Image fields must define a default label"

	msgImageDefaultObject = "Image fields must define a default object"
	msgImageDefaultSrc    = "Image fields must define a default src"
	msgImageDefaultAlt    = "Image fields must define a default alt"
	msgImageDimsMissing   = "Image fields must define dimension rules"
	msgImageDimsMinEmpty  = "Image fields must define minimum dimensions"
	msgImageDimsMinWidth  = "Image fields must define a minimum width"
	msgImageDimsMinHeight = "Image fields must define a minimum height"
)

// fmtTypeUnknown and fmtItemsTypeUnknown cite the offending value.
const (
	fmtTypeUnknown      = "Unknown field type %q"
	fmtItemsTypeUnknown = "Unknown field type %q for array items"
)
