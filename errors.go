package jsonschema

import "errors"

// Catalog errors: raised by Catalog/Session operations (schema registration,
// lookup, source resolution).
var (
	ErrUnknownUri        = errors.New("jsonschema: no schema is registered for this URI")
	ErrNotASchema        = errors.New("jsonschema: the object referenced by this URI is not a schema")
	ErrInvalidSource     = errors.New("jsonschema: source prefix must be a normalized absolute URI without a fragment, ending in '/'")
	ErrSessionInUse      = errors.New("jsonschema: session identifier is already in use")
	ErrCatalogMissing    = errors.New("jsonschema: no catalog is associated with this schema")
	ErrFormatNotEnabled  = errors.New("jsonschema: format assertion is not enabled for this catalog")
	ErrUnknownVocabulary = errors.New("jsonschema: unrecognized vocabulary URI")
	ErrUnknownFormat     = errors.New("jsonschema: no validator is registered for this format attribute")
)

// Compile errors: raised while turning a JSON document into a CompiledSchema.
var (
	ErrSchemaCompile         = errors.New("jsonschema: schema compilation failed")
	ErrInvalidSchema         = errors.New("jsonschema: invalid schema: not an object or boolean, or a keyword value has the wrong shape")
	ErrInvalidId             = errors.New("jsonschema: \"$id\" must be a URI reference without a fragment that resolves to an absolute URI")
	ErrMissingCoreVocabulary = errors.New("jsonschema: metaschema does not declare its own core vocabulary as required")
	ErrMixedItemsShape       = errors.New("jsonschema: a schema may not declare both \"prefixItems\" and array-form \"items\"")
	ErrDuplicateAnchor       = errors.New("jsonschema: anchor is already declared in this schema resource")
)

// Reference errors: raised while resolving $ref / $recursiveRef / $dynamicRef.
var (
	ErrReferenceUnresolved = errors.New("jsonschema: reference could not be resolved")
	ErrNoBaseURI           = errors.New("jsonschema: no base URI against which to resolve a relative reference")
)

// URI and pointer component errors.
var (
	ErrUriMalformed     = errors.New("jsonschema: malformed URI")
	ErrPointerMalformed = errors.New("jsonschema: malformed JSON pointer")
	ErrPointerReference = errors.New("jsonschema: JSON pointer does not resolve against the given document")
)

// Format validator errors, used by the ipv6 checks in formats.go.
var (
	ErrIPv6AddressNotEnclosed = errors.New("jsonschema: IPv6 host must be enclosed in brackets")
	ErrInvalidIPv6Address     = errors.New("jsonschema: invalid IPv6 address")
)

// Numeric conversion errors, used by the exact-decimal Rat comparisons
// underlying multipleOf/maximum/minimum/exclusiveMaximum/exclusiveMinimum.
var (
	ErrUnsupportedTypeForRat = errors.New("jsonschema: value cannot be converted to an exact numeric representation")
	ErrFailedToConvertToRat  = errors.New("jsonschema: numeric string could not be parsed")
)
