package weaviate

// DataType is a property data type. Array types carry a "[]" suffix.
type DataType string

const (
	DataTypeText           DataType = "text"
	DataTypeTextArray      DataType = "text[]"
	DataTypeInt            DataType = "int"
	DataTypeIntArray       DataType = "int[]"
	DataTypeNumber         DataType = "number"
	DataTypeNumberArray    DataType = "number[]"
	DataTypeBoolean        DataType = "boolean"
	DataTypeBooleanArray   DataType = "boolean[]"
	DataTypeDate           DataType = "date"
	DataTypeDateArray      DataType = "date[]"
	DataTypeUUID           DataType = "uuid"
	DataTypeUUIDArray      DataType = "uuid[]"
	DataTypeGeoCoordinates DataType = "geoCoordinates"
	DataTypePhoneNumber    DataType = "phoneNumber"
	DataTypeBlob           DataType = "blob"
	DataTypeObject         DataType = "object"
	DataTypeObjectArray    DataType = "object[]"
)

type Tokenization string

const (
	TokenizationWord       Tokenization = "word"
	TokenizationLowercase  Tokenization = "lowercase"
	TokenizationWhitespace Tokenization = "whitespace"
	TokenizationField      Tokenization = "field"
	TokenizationTrigram    Tokenization = "trigram"
)

// Distance is the vector distance metric of an index.
type Distance string

const (
	DistanceCosine    Distance = "cosine"
	DistanceDot       Distance = "dot"
	DistanceL2Squared Distance = "l2-squared"
	DistanceHamming   Distance = "hamming"
	DistanceManhattan Distance = "manhattan"
)

type VectorIndexType string

const (
	VectorIndexHNSW    VectorIndexType = "hnsw"
	VectorIndexFlat    VectorIndexType = "flat"
	VectorIndexDynamic VectorIndexType = "dynamic"
)

// Common vectorizer module names.
const (
	VectorizerNone                  = "none"
	VectorizerText2VecOpenAI        = "text2vec-openai"
	VectorizerText2VecTransformers  = "text2vec-transformers"
	VectorizerText2VecContextionary = "text2vec-contextionary"
	VectorizerText2VecCohere        = "text2vec-cohere"
	VectorizerImg2VecNeural         = "img2vec-neural"
)

// Collection is a class definition in the schema.
type Collection struct {
	Class               string               `json:"class"`
	Description         string               `json:"description,omitempty"`
	Vectorizer          string               `json:"vectorizer,omitempty"`
	VectorIndexType     VectorIndexType      `json:"vectorIndexType,omitempty"`
	VectorIndexConfig   map[string]any       `json:"vectorIndexConfig,omitempty"`
	ModuleConfig        map[string]any       `json:"moduleConfig,omitempty"`
	Properties          []Property           `json:"properties,omitempty"`
	InvertedIndexConfig *InvertedIndexConfig `json:"invertedIndexConfig,omitempty"`
	ShardingConfig      *ShardingConfig      `json:"shardingConfig,omitempty"`
	ReplicationConfig   *ReplicationConfig   `json:"replicationConfig,omitempty"`
	MultiTenancyConfig  *MultiTenancyConfig  `json:"multiTenancyConfig,omitempty"`
}

type Property struct {
	Name             string         `json:"name"`
	DataType         []DataType     `json:"dataType"`
	Description      string         `json:"description,omitempty"`
	Tokenization     Tokenization   `json:"tokenization,omitempty"`
	IndexFilterable  *bool          `json:"indexFilterable,omitempty"`
	IndexSearchable  *bool          `json:"indexSearchable,omitempty"`
	ModuleConfig     map[string]any `json:"moduleConfig,omitempty"`
	NestedProperties []Property     `json:"nestedProperties,omitempty"`
}

// NewProperty creates a property of a single data type.
func NewProperty(name string, dataType DataType) Property {
	return Property{Name: name, DataType: []DataType{dataType}}
}

// SchemaDump is the response of GET /v1/schema.
type SchemaDump struct {
	Classes    []Collection `json:"classes"`
	Name       string       `json:"name,omitempty"`
	Maintainer string       `json:"maintainer,omitempty"`
}

type InvertedIndexConfig struct {
	BM25                   *BM25Config     `json:"bm25,omitempty"`
	Stopwords              *StopwordConfig `json:"stopwords,omitempty"`
	CleanupIntervalSeconds int             `json:"cleanupIntervalSeconds,omitempty"`
	IndexTimestamps        bool            `json:"indexTimestamps,omitempty"`
	IndexNullState         bool            `json:"indexNullState,omitempty"`
	IndexPropertyLength    bool            `json:"indexPropertyLength,omitempty"`
}

type BM25Config struct {
	B  float32 `json:"b"`
	K1 float32 `json:"k1"`
}

type StopwordConfig struct {
	Preset    string   `json:"preset,omitempty"`
	Additions []string `json:"additions,omitempty"`
	Removals  []string `json:"removals,omitempty"`
}

type ShardingConfig struct {
	VirtualPerPhysical  int    `json:"virtualPerPhysical,omitempty"`
	DesiredCount        int    `json:"desiredCount,omitempty"`
	ActualCount         int    `json:"actualCount,omitempty"`
	DesiredVirtualCount int    `json:"desiredVirtualCount,omitempty"`
	ActualVirtualCount  int    `json:"actualVirtualCount,omitempty"`
	Key                 string `json:"key,omitempty"`
	Strategy            string `json:"strategy,omitempty"`
	Function            string `json:"function,omitempty"`
}

type ReplicationConfig struct {
	Factor       int  `json:"factor,omitempty"`
	AsyncEnabled bool `json:"asyncEnabled,omitempty"`
}

type MultiTenancyConfig struct {
	Enabled            bool `json:"enabled"`
	AutoTenantCreation bool `json:"autoTenantCreation,omitempty"`
}

// ShardStatus is the writable state of a shard.
type ShardStatus string

const (
	ShardStatusReady    ShardStatus = "READY"
	ShardStatusReadOnly ShardStatus = "READONLY"
	ShardStatusIndexing ShardStatus = "INDEXING"
)

type Shard struct {
	Name   string      `json:"name,omitempty"`
	Status ShardStatus `json:"status"`
}
