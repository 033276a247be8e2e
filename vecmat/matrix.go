package vecmat

// MatrixValue is satisfied only by this package's Mat2x2..Mat4x4 types. WGSL only allows
// floating-point matrices, so every column is a Vec{R}[float32].
type MatrixValue interface {
	isMatrixValue()
	Cols() int
	Rows() int
	Column(i int) VectorValue
	SetColumn(i int, v VectorValue)
}

// Mat2x2 is a WGSL mat2x2<f32>: two vec2<f32> columns.
type Mat2x2 struct{ Cols_ [2]Vec2[float32] }

func (Mat2x2) isMatrixValue()                    {}
func (Mat2x2) Cols() int                         { return 2 }
func (Mat2x2) Rows() int                         { return 2 }
func (m *Mat2x2) Column(i int) VectorValue       { return &m.Cols_[i] }
func (m *Mat2x2) SetColumn(i int, v VectorValue) { m.Cols_[i] = *(v.(*Vec2[float32])) }

// Mat2x3 is a WGSL mat2x3<f32>: two vec3<f32> columns.
type Mat2x3 struct{ Cols_ [2]Vec3[float32] }

func (Mat2x3) isMatrixValue()                    {}
func (Mat2x3) Cols() int                         { return 2 }
func (Mat2x3) Rows() int                         { return 3 }
func (m *Mat2x3) Column(i int) VectorValue       { return &m.Cols_[i] }
func (m *Mat2x3) SetColumn(i int, v VectorValue) { m.Cols_[i] = *(v.(*Vec3[float32])) }

// Mat2x4 is a WGSL mat2x4<f32>: two vec4<f32> columns.
type Mat2x4 struct{ Cols_ [2]Vec4[float32] }

func (Mat2x4) isMatrixValue()                    {}
func (Mat2x4) Cols() int                         { return 2 }
func (Mat2x4) Rows() int                         { return 4 }
func (m *Mat2x4) Column(i int) VectorValue       { return &m.Cols_[i] }
func (m *Mat2x4) SetColumn(i int, v VectorValue) { m.Cols_[i] = *(v.(*Vec4[float32])) }

// Mat3x2 is a WGSL mat3x2<f32>: three vec2<f32> columns.
type Mat3x2 struct{ Cols_ [3]Vec2[float32] }

func (Mat3x2) isMatrixValue()                    {}
func (Mat3x2) Cols() int                         { return 3 }
func (Mat3x2) Rows() int                         { return 2 }
func (m *Mat3x2) Column(i int) VectorValue       { return &m.Cols_[i] }
func (m *Mat3x2) SetColumn(i int, v VectorValue) { m.Cols_[i] = *(v.(*Vec2[float32])) }

// Mat3x3 is a WGSL mat3x3<f32>: three vec3<f32> columns.
type Mat3x3 struct{ Cols_ [3]Vec3[float32] }

func (Mat3x3) isMatrixValue()                    {}
func (Mat3x3) Cols() int                         { return 3 }
func (Mat3x3) Rows() int                         { return 3 }
func (m *Mat3x3) Column(i int) VectorValue       { return &m.Cols_[i] }
func (m *Mat3x3) SetColumn(i int, v VectorValue) { m.Cols_[i] = *(v.(*Vec3[float32])) }

// Mat3x4 is a WGSL mat3x4<f32>: three vec4<f32> columns.
type Mat3x4 struct{ Cols_ [3]Vec4[float32] }

func (Mat3x4) isMatrixValue()                    {}
func (Mat3x4) Cols() int                         { return 3 }
func (Mat3x4) Rows() int                         { return 4 }
func (m *Mat3x4) Column(i int) VectorValue       { return &m.Cols_[i] }
func (m *Mat3x4) SetColumn(i int, v VectorValue) { m.Cols_[i] = *(v.(*Vec4[float32])) }

// Mat4x2 is a WGSL mat4x2<f32>: four vec2<f32> columns.
type Mat4x2 struct{ Cols_ [4]Vec2[float32] }

func (Mat4x2) isMatrixValue()                    {}
func (Mat4x2) Cols() int                         { return 4 }
func (Mat4x2) Rows() int                         { return 2 }
func (m *Mat4x2) Column(i int) VectorValue       { return &m.Cols_[i] }
func (m *Mat4x2) SetColumn(i int, v VectorValue) { m.Cols_[i] = *(v.(*Vec2[float32])) }

// Mat4x3 is a WGSL mat4x3<f32>: four vec3<f32> columns.
type Mat4x3 struct{ Cols_ [4]Vec3[float32] }

func (Mat4x3) isMatrixValue()                    {}
func (Mat4x3) Cols() int                         { return 4 }
func (Mat4x3) Rows() int                         { return 3 }
func (m *Mat4x3) Column(i int) VectorValue       { return &m.Cols_[i] }
func (m *Mat4x3) SetColumn(i int, v VectorValue) { m.Cols_[i] = *(v.(*Vec3[float32])) }

// Mat4x4 is a WGSL mat4x4<f32>: four vec4<f32> columns.
type Mat4x4 struct{ Cols_ [4]Vec4[float32] }

func (Mat4x4) isMatrixValue()                    {}
func (Mat4x4) Cols() int                         { return 4 }
func (Mat4x4) Rows() int                         { return 4 }
func (m *Mat4x4) Column(i int) VectorValue       { return &m.Cols_[i] }
func (m *Mat4x4) SetColumn(i int, v VectorValue) { m.Cols_[i] = *(v.(*Vec4[float32])) }
