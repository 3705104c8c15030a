package table

// Field is one key/value pair of a row.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Row is a record rendered as one table row. Keys keep the order in which they were first added, the way object
// keys keep their declaration order.
type Row struct {
	keys   []string
	values map[string]interface{}
}

// NewRow builds a row from fields in order. A repeated key overwrites the earlier value but keeps its position.
func NewRow(fields ...Field) Row {
	row := Row{
		keys:   make([]string, 0, len(fields)),
		values: make(map[string]interface{}, len(fields)),
	}
	for _, field := range fields {
		row.set(field.Key, field.Value)
	}
	return row
}

// RowFromMap builds a row from values using the order given by keys. Keys missing from values are stored as nil.
func RowFromMap(keys []string, values map[string]interface{}) Row {
	row := Row{
		keys:   make([]string, 0, len(keys)),
		values: make(map[string]interface{}, len(keys)),
	}
	for _, key := range keys {
		row.set(key, values[key])
	}
	return row
}

func (r *Row) set(key string, value interface{}) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Keys returns a copy of the row's keys in order.
func (r Row) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Get returns the value stored under key and whether the row has it.
func (r Row) Get(key string) (interface{}, bool) {
	value, ok := r.values[key]
	return value, ok
}

// Len is the number of keys.
func (r Row) Len() int {
	return len(r.keys)
}

// Fields returns the key/value pairs in key order.
func (r Row) Fields() []Field {
	fields := make([]Field, 0, len(r.keys))
	for _, key := range r.keys {
		fields = append(fields, Field{Key: key, Value: r.values[key]})
	}
	return fields
}
