// Package spline provides multi-segment Catmull-Rom curves with an
// arc-length parameter, as used for reference paths and vehicle trajectories.
/*

A Catmull-Rom spline interpolates a sequence of control points with piecewise
cubic segments. Unlike B-splines it passes through every control point, which
makes it a natural fit for paths that are recorded or designed as waypoint
lists. The construction goes back to

   A Class of Local Interpolating Splines -- Edwin Catmull, Raphael Rom
   Computer Aided Geometric Design, Academic Press 1974, pp. 317-326

with a newer treatment of evaluation and parameterization in

   Recursive Evaluation Algorithm for a Class of Catmull-Rom Splines --
   Phillip J. Barry, Ronald N. Goldman
   SIGGRAPH Computer Graphics 22(4), 1988

This package uses the uniform variant. Each inner segment is determined by
four consecutive control points; the first and last segment use a one-sided
three-point rule so that the spline starts and ends exactly at the terminal
control points.

Clients address positions on a spline by arc length s, not by the spline
parameter t. Per segment, a lookup table maps between the two, built with
Gauss-Legendre quadrature over the speed function. All queries take or
return arc lengths, so that "5 meters further along the curve" means what
it says.

Usage

Construction takes the control points and classifies the result by point
count. One point yields a degenerate spline that answers no geometric
queries, two points yield an exact line segment, three or more points yield
a proper curve:

   curve, err := spline.NewCatmullRom(points)
   if err != nil { ... }
   pose := curve.PoseAt(12.5)
   path := curve.Trajectory(0, curve.Length(), 0.5, 0)

Arc lengths outside [0, Length()] extrapolate linearly along the first or
last segment instead of clamping; callers that want clamping must clamp
themselves.


BSD License

Copyright (c) the trajekt project authors

All rights reserved.

Please refer to the license file for more information.
*/
package spline
