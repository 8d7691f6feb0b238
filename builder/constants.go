// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by mesh builders, ensuring
// consistent minima and error context across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodVerticesAndFaces is the canonical name for the VerticesAndFaces constructor.
	MethodVerticesAndFaces = "VerticesAndFaces"
	// MethodPolygons is the canonical name for the Polygons constructor.
	MethodPolygons = "Polygons"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRegularPolygon is the canonical name for the RegularPolygon constructor.
	MethodRegularPolygon = "RegularPolygon"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
	// MethodConvexHull is the canonical name for the ConvexHull constructor.
	MethodConvexHull = "ConvexHull"
	// MethodFromSDF is the canonical name for the FromSDF constructor.
	MethodFromSDF = "FromSDF"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinPolygonVertices is the smallest meaningful polygon (a triangle).
const MinPolygonVertices = 3

// MinWheelVertices is the smallest wheel: a center plus a triangular rim.
const MinWheelVertices = 4

// MinGridDim is the smallest grid extent in cells along either axis.
const MinGridDim = 1

// MinHullPoints is the smallest point cloud that can span a volume.
const MinHullPoints = 4

// MinSDFCells is the smallest marching-cubes resolution along the longest axis.
const MinSDFCells = 2
