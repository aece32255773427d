/*
Package glm implements the float32 vector, matrix and quaternion types
used to marshal uniforms and vertex-buffer payloads for glctx programs.

Operations are package-level functions (Add, Scale, ...) rather than
methods, keeping chained expressions readable; Vec3 and Mat3 carry
padding matching OpenGL's std140/std430 vec3/mat3 layout so they can be
written directly into mapped buffers.
*/
package glm
