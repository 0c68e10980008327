// Package stc turns one robot's region into a coverage circuit with the
// spanning-tree coverage construction.
//
// Every coarse cell of the region is split into a 2×2 block of fine cells.
// A spanning tree over the coarse cells acts as a wall the robot keeps on one
// side: fine cells cross into a neighbouring block only over a tree edge and
// otherwise move within their own block. The result visits each of the 4N
// fine cells once in a single non-crossing loop of 4N−1 unit segments.
//
// Fine coordinates are derived on demand with Fine and Coarse; no doubled
// grid is allocated.
//
//	path, err := stc.Generate(region.Mask, rows, cols, region.Start,
//	    stc.WithWeighting(stc.WeightHorizontal))
package stc
